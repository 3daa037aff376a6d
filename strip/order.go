package strip

// Order is a permutation of the three color channels: Order[c] is the physical
// byte offset within a pixel record that holds logical channel c (0=R, 1=G,
// 2=B). Not all LPD8806 strands are wired alike.
type Order [3]int

var (
	RGB = Order{0, 1, 2}
	GRB = Order{1, 0, 2} // Strands from Adafruit and some others (default)
	BRG = Order{1, 2, 0} // Strands from many other manufacturers
)

// Orders maps the names accepted from flags or config to their permutations.
var Orders = map[string]Order{
	"RGB": RGB,
	"GRB": GRB,
	"BRG": BRG,
}
