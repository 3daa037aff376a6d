package strip

import (
	"errors"
	"fmt"

	"github.com/squeed/RPi-LPD8806/pixel"
)

// ErrIndex is wrapped by all errors for pixel indices outside the buffer.
var ErrIndex = errors.New("pixel index out of range")

// Buffer holds the device-encoded bytes for a strand of pixels. Each write
// re-derives a pixel's three bytes from a color, applying the master
// brightness, the gamma curve and the channel order in effect at that moment.
// A rejected write leaves the buffer untouched.
type Buffer struct {
	pix    []byte
	n      int
	order  Order
	bright float64
	gamma  *gammaTable
}

// NewBuffer allocates a buffer of n zeroed pixel records with the default GRB
// order and full master brightness.
func NewBuffer(n int) (*Buffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: strip length must be positive, got %d", pixel.ErrInvalid, n)
	}
	return &Buffer{
		pix:    make([]byte, n*3),
		n:      n,
		order:  GRB,
		bright: 1.0,
		gamma:  newGammaTable(),
	}, nil
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.n
}

// Bytes returns the raw frame in buffer order, ready for transmission.
func (b *Buffer) Bytes() []byte {
	return b.pix
}

// At returns pixel i's raw device-encoded record, not the color it was
// written from.
func (b *Buffer) At(i int) ([3]byte, error) {
	if i < 0 || i >= b.n {
		return [3]byte{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, i, b.n)
	}
	return [3]byte(b.pix[i*3 : i*3+3]), nil
}

// SetChannelOrder replaces the active permutation. Affects only future writes.
func (b *Buffer) SetChannelOrder(o Order) {
	b.order = o
}

// SetMasterBrightness scales every future write by bright, which must be in
// [0,1].
func (b *Buffer) SetMasterBrightness(bright float64) error {
	if bright < 0.0 || bright > 1.0 {
		return fmt.Errorf("%w: brightness must be between 0.0 and 1.0, got %f", pixel.ErrInvalid, bright)
	}
	b.bright = bright
	return nil
}

// Set writes color c to pixel i.
func (b *Buffer) Set(i int, c pixel.Color) error {
	if i < 0 || i >= b.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndex, i, b.n)
	}
	r, g, bl := c.RGB()
	b.pix[i*3+b.order[0]] = b.gamma[int(r*b.bright)]
	b.pix[i*3+b.order[1]] = b.gamma[int(g*b.bright)]
	b.pix[i*3+b.order[2]] = b.gamma[int(bl*b.bright)]
	return nil
}

// SetRange writes one color per pixel to the span starting at start. The whole
// span must fit in the buffer; nothing is written otherwise.
func (b *Buffer) SetRange(start int, colors []pixel.Color) error {
	if start < 0 || start+len(colors) > b.n {
		return fmt.Errorf("%w: [%d,%d) not in [0,%d)", ErrIndex, start, start+len(colors), b.n)
	}
	for i, c := range colors {
		if err := b.Set(start+i, c); err != nil {
			return err
		}
	}
	return nil
}

// SetRGB writes an RGB value to pixel i.
func (b *Buffer) SetRGB(i int, r, g, bl float64) error {
	c, err := pixel.RGB(r, g, bl)
	if err != nil {
		return err
	}
	return b.Set(i, c)
}

// SetTuple writes a 3-element RGB slice to pixel i.
func (b *Buffer) SetTuple(i int, vals []float64) error {
	if len(vals) != 3 {
		return fmt.Errorf("%w: input must be a 3-tuple, got %d values", pixel.ErrInvalid, len(vals))
	}
	return b.SetRGB(i, vals[0], vals[1], vals[2])
}

// SetHSV writes an HSV value to pixel i.
func (b *Buffer) SetHSV(i int, h, s, v float64) error {
	c, err := pixel.NewColorHSV(h, s, v)
	if err != nil {
		return err
	}
	return b.Set(i, c.Color())
}

// SetHue writes a fully saturated hue to pixel i.
func (b *Buffer) SetHue(i int, h float64) error {
	return b.SetHSV(i, h, 1.0, 1.0)
}

// SetOff turns pixel i off.
func (b *Buffer) SetOff(i int) error {
	return b.Set(i, pixel.Color{})
}

// clampEnd applies the strand's default range: end<=0 or past the buffer means
// the whole strand.
func (b *Buffer) clampEnd(end int) int {
	if end <= 0 || end > b.n {
		return b.n
	}
	return end
}

// Fill writes c to every pixel in [start,end). end<=0 means the end of the
// strand.
func (b *Buffer) Fill(c pixel.Color, start, end int) error {
	end = b.clampEnd(end)
	for i := start; i < end; i++ {
		if err := b.Set(i, c); err != nil {
			return err
		}
	}
	return nil
}

// FillRGB fills [start,end) with an RGB value.
func (b *Buffer) FillRGB(r, g, bl float64, start, end int) error {
	c, err := pixel.RGB(r, g, bl)
	if err != nil {
		return err
	}
	return b.Fill(c, start, end)
}

// FillHSV fills [start,end) with an HSV value.
func (b *Buffer) FillHSV(h, s, v float64, start, end int) error {
	c, err := pixel.NewColorHSV(h, s, v)
	if err != nil {
		return err
	}
	return b.Fill(c.Color(), start, end)
}

// FillHue fills [start,end) with a fully saturated hue.
func (b *Buffer) FillHue(h float64, start, end int) error {
	return b.FillHSV(h, 1.0, 1.0, start, end)
}

// FillOff turns off every pixel in [start,end).
func (b *Buffer) FillOff(start, end int) error {
	return b.Fill(pixel.Color{}, start, end)
}
