// Package pixel holds the color value types for LPD8806 strips. Colors are
// carried as RGB floats in [0,255] and converted to the strip's 7-bit values
// only when written into a buffer.
package pixel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by all errors for out-of-range or malformed color input.
var ErrInvalid = errors.New("invalid value")

// Color is an RGB color with its brightness already applied. Immutable.
type Color struct {
	r, g, b float64
}

// NewColor validates r, g and b against [0,255] and bright against [0,1], then
// stores the channels pre-scaled by bright.
func NewColor(r, g, b, bright float64) (Color, error) {
	if r < 0.0 || r > 255.0 || g < 0.0 || g > 255.0 || b < 0.0 || b > 255.0 {
		return Color{}, fmt.Errorf("%w: RGB values must be between 0 and 255, got %f,%f,%f", ErrInvalid, r, g, b)
	}
	if bright < 0.0 || bright > 1.0 {
		return Color{}, fmt.Errorf("%w: brightness must be between 0.0 and 1.0, got %f", ErrInvalid, bright)
	}
	return Color{r * bright, g * bright, b * bright}, nil
}

// RGB is NewColor at full brightness.
func RGB(r, g, b float64) (Color, error) {
	return NewColor(r, g, b, 1.0)
}

// RGB returns the stored channel values.
func (c Color) RGB() (float64, float64, float64) {
	return c.r, c.g, c.b
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", int(c.r), int(c.g), int(c.b))
}

// HSV converts to HSV space, hue in degrees.
func (c Color) HSV() ColorHSV {
	r, g, b := c.r/255.0, c.g/255.0, c.b/255.0
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v := maxc
	if maxc == minc {
		return ColorHSV{0, 0, v}
	}
	s := (maxc - minc) / maxc
	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = math.Mod(h/6.0, 1.0)
	if h < 0.0 {
		h += 1.0
	}
	return ColorHSV{h * 360.0, s, v}
}

// ColorHSV is the HSV representation of a color. Sweeping H through [0,360]
// gives natural transitions. Immutable.
type ColorHSV struct {
	H, S, V float64
}

// NewColorHSV validates h against [0,360] and s and v against [0,1].
func NewColorHSV(h, s, v float64) (ColorHSV, error) {
	if h < 0.0 || h > 360.0 {
		return ColorHSV{}, fmt.Errorf("%w: hue must be between 0.0 and 360.0, got %f", ErrInvalid, h)
	}
	if s < 0.0 || s > 1.0 {
		return ColorHSV{}, fmt.Errorf("%w: saturation must be between 0.0 and 1.0, got %f", ErrInvalid, s)
	}
	if v < 0.0 || v > 1.0 {
		return ColorHSV{}, fmt.Errorf("%w: value must be between 0.0 and 1.0, got %f", ErrInvalid, v)
	}
	return ColorHSV{h, s, v}, nil
}

// Hue is NewColorHSV with saturation and value at max.
func Hue(h float64) (ColorHSV, error) {
	return NewColorHSV(h, 1.0, 1.0)
}

// Color converts to RGB space, channels scaled to [0,255].
func (c ColorHSV) Color() Color {
	r, g, b := hsvToRGB(c.H/360.0, c.S, c.V)
	return Color{r * 255.0, g * 255.0, b * 255.0}
}

// RGB returns the RGB channels scaled to [0,255].
func (c ColorHSV) RGB() (float64, float64, float64) {
	return c.Color().RGB()
}

func (c ColorHSV) String() string {
	return fmt.Sprintf("%0.2f,%0.2f,%0.2f", c.H, c.S, c.V)
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	if s == 0.0 {
		return v, v, v
	}
	i := math.Floor(h * 6.0)
	f := h*6.0 - i
	p := v * (1.0 - s)
	q := v * (1.0 - s*f)
	t := v * (1.0 - s*(1.0-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	}
	return v, p, q
}
