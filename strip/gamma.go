package strip

import "math"

// gammaTable maps linear 0-255 intensity to the LPD8806's 7-bit value with the
// high marker bit set. Curve from
// http://learn.adafruit.com/light-painting-with-raspberry-pi
type gammaTable [256]byte

func newGammaTable() *gammaTable {
	var t gammaTable
	for i := range t {
		t[i] = 0x80 | byte(math.Pow(float64(i)/255.0, 2.5)*127.0+0.5)
	}
	return &t
}
