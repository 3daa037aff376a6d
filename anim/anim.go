// Package anim implements stateful step animations over a pixel buffer. Each
// function advances its cursor by exactly one step per call and leaves
// transmission to the caller: drive the step/Update/sleep loop yourself.
package anim

import (
	"math"

	"github.com/squeed/RPi-LPD8806/pixel"
	"github.com/squeed/RPi-LPD8806/strip"
)

// State holds the per-animation cursors. Cursors are independent; one State
// can drive several animation kinds without them interfering.
type State struct {
	RainbowStep      int
	RainbowCycleStep int
	WipeStep         int
	ChaseStep        int
	LarsonStep       int
	LarsonDir        int
	LarsonLast       int
	WaveStep         int
}

func NewState() *State {
	return &State{LarsonDir: -1}
}

// clampEnd applies the default range: end<=0 or past the buffer means the
// whole strand.
func clampEnd(b *strip.Buffer, end int) int {
	if end <= 0 || end > b.Len() {
		return b.Len()
	}
	return end
}

// Wheel maps a position in [0,384] onto a fully saturated rainbow palette:
// three 128-wide segments, red to green to blue and back to red.
func Wheel(pos int) pixel.Color {
	if pos < 0 {
		pos = 0
	}
	if pos > 384 {
		pos = 384
	}
	var r, g, b float64
	switch {
	case pos < 128:
		r = float64(127 - pos%128)
		g = float64(pos % 128)
	case pos < 256:
		g = float64(127 - pos%128)
		b = float64(pos % 128)
	default:
		b = float64(127 - pos%128)
		r = float64(pos % 128)
	}
	c, _ := pixel.RGB(r, g, b) // channels are at most 127
	return c
}

// Rainbow shifts the wheel palette one position along [start,end) per step.
func Rainbow(st *State, b *strip.Buffer, start, end int) error {
	end = clampEnd(b, end)
	size := end - start

	for i := 0; i < size; i++ {
		if err := b.Set(start+i, Wheel((i+st.RainbowStep)%384)); err != nil {
			return err
		}
	}

	st.RainbowStep++
	if st.RainbowStep > 384 {
		st.RainbowStep = 0
	}
	return nil
}

// RainbowCycle is Rainbow with the whole wheel stretched once over the range.
func RainbowCycle(st *State, b *strip.Buffer, start, end int) error {
	end = clampEnd(b, end)
	size := end - start

	for i := 0; i < size; i++ {
		pos := (int(float64(i)*384.0/float64(size)) + st.RainbowCycleStep) % 384
		if err := b.Set(start+i, Wheel(pos)); err != nil {
			return err
		}
	}

	st.RainbowCycleStep++
	if st.RainbowCycleStep > 384 {
		st.RainbowCycleStep = 0
	}
	return nil
}

// ColorWipe lights [start,end) one pixel per step, clearing the range when a
// pass begins.
func ColorWipe(st *State, b *strip.Buffer, c pixel.Color, start, end int) error {
	end = clampEnd(b, end)

	if st.WipeStep == 0 {
		if err := b.FillOff(start, end); err != nil {
			return err
		}
	}
	if err := b.Set(start+st.WipeStep, c); err != nil {
		return err
	}

	st.WipeStep++
	if start+st.WipeStep >= end {
		st.WipeStep = 0
	}
	return nil
}

// ColorChase runs a single lit pixel down [start,end), clearing the
// previously lit pixel each step.
func ColorChase(st *State, b *strip.Buffer, c pixel.Color, start, end int) error {
	end = clampEnd(b, end)

	if st.ChaseStep == 0 {
		if err := b.SetOff(end - 1); err != nil {
			return err
		}
	} else {
		if err := b.SetOff(start + st.ChaseStep - 1); err != nil {
			return err
		}
	}
	if err := b.Set(start+st.ChaseStep, c); err != nil {
		return err
	}

	st.ChaseStep++
	if start+st.ChaseStep >= end {
		st.ChaseStep = 0
	}
	return nil
}

// LarsonScanner bounces a lit pixel with fading tails between the ends of
// [start,end), K.I.T.T. style. fade is the tail's peak level; the falloff is
// linear over tail pixels and clamped so channel math stays in range.
func LarsonScanner(st *State, b *strip.Buffer, c pixel.Color, tail int, fade float64, start, end int) error {
	end = clampEnd(b, end)
	size := end - start

	tail++ // makes the tail math below easier
	if tail >= size/2 {
		tail = size/2 - 1
	}

	st.LarsonLast = start + st.LarsonStep
	if err := b.Set(st.LarsonLast, c); err != nil {
		return err
	}
	r, g, bl := c.RGB()

	// The faded spans run larsonLast..larsonLast+tl-1 and
	// larsonLast-tr+1..larsonLast; the pixel just beyond each span is cleared
	// to erase the previous step's tail.
	tl := tail
	if st.LarsonLast+tl > end {
		tl = end - st.LarsonLast
	}
	tr := tail
	if st.LarsonLast-tr < start {
		tr = st.LarsonLast - start
	}

	for l := 0; l < tl; l++ {
		level := clampLevel(float64(tail-l) / float64(tail) * fade)
		if err := b.SetRGB(st.LarsonLast+l, r*level, g*level, bl*level); err != nil {
			return err
		}
	}
	if tl > 0 && st.LarsonLast+tl < end {
		if err := b.SetOff(st.LarsonLast + tl); err != nil {
			return err
		}
	}

	for rr := 0; rr < tr; rr++ {
		level := clampLevel(float64(tail-rr) / float64(tail) * fade)
		if err := b.SetRGB(st.LarsonLast-rr, r*level, g*level, bl*level); err != nil {
			return err
		}
	}
	if tr > 0 && st.LarsonLast-tr >= start {
		if err := b.SetOff(st.LarsonLast - tr); err != nil {
			return err
		}
	}

	if st.LarsonStep == size-1 || st.LarsonStep == 0 {
		st.LarsonDir = -st.LarsonDir
	}
	st.LarsonStep += st.LarsonDir
	return nil
}

func clampLevel(l float64) float64 {
	if l < 0.0 {
		return 0.0
	}
	if l > 1.0 {
		return 1.0
	}
	return l
}

// LarsonRainbow is LarsonScanner with the hue swept across the range.
func LarsonRainbow(st *State, b *strip.Buffer, tail int, fade float64, start, end int) error {
	end = clampEnd(b, end)
	size := end - start

	hue := float64(st.LarsonStep) * (360.0 / float64(size))
	c, err := pixel.Hue(hue)
	if err != nil {
		return err
	}
	return LarsonScanner(st, b, c.Color(), tail, fade, start, end)
}

// Wave rolls a sine wave along [start,end): peaks blend the color toward
// white, troughs toward black. The step counter grows without bound; the
// caller decides when to stop.
func Wave(st *State, b *strip.Buffer, c pixel.Color, cycles, start, end int) error {
	end = clampEnd(b, end)
	size := end - start
	r, g, bl := c.RGB()

	for i := 0; i < size; i++ {
		y := math.Sin(math.Pi * float64(cycles) * float64(st.WaveStep*i) / float64(size))
		var c2 pixel.Color
		var err error
		if y >= 0.0 {
			// Peaks of the wave are white
			y = 1.0 - y // Translate y to 0.0 (top) to 1.0 (center)
			c2, err = pixel.RGB(255.0-(255.0-r)*y, 255.0-(255.0-g)*y, 255.0-(255.0-bl)*y)
		} else {
			// Troughs of the wave are black
			y += 1.0 // Translate y to 0.0 (bottom) to 1.0 (center)
			c2, err = pixel.RGB(r*y, g*y, bl*y)
		}
		if err != nil {
			return err
		}
		if err := b.Set(start+i, c2); err != nil {
			return err
		}
	}

	st.WaveStep++
	return nil
}
