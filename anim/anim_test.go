package anim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squeed/RPi-LPD8806/pixel"
	"github.com/squeed/RPi-LPD8806/strip"
)

func newBuf(t *testing.T, n int) *strip.Buffer {
	t.Helper()
	b, err := strip.NewBuffer(n)
	require.NoError(t, err)
	return b
}

// record reads pixel i's raw bytes, failing the test on a bad index.
func record(t *testing.T, b *strip.Buffer, i int) [3]byte {
	t.Helper()
	rec, err := b.At(i)
	require.NoError(t, err)
	return rec
}

// encoded returns the device bytes a single Set of c produces, for comparing
// animation output without reimplementing the gamma curve.
func encoded(t *testing.T, c pixel.Color) [3]byte {
	t.Helper()
	b := newBuf(t, 1)
	require.NoError(t, b.Set(0, c))
	return record(t, b, 0)
}

func off(t *testing.T) [3]byte {
	t.Helper()
	return encoded(t, pixel.Color{})
}

func TestWheel(t *testing.T) {
	tests := []struct {
		pos     int
		r, g, b float64
	}{
		{0, 127, 0, 0},
		{64, 63, 64, 0},
		{127, 0, 127, 0},
		{128, 0, 127, 0},
		{192, 0, 63, 64},
		{256, 0, 0, 127},
		{320, 64, 0, 63},
		{384, 0, 0, 127},
		{-10, 127, 0, 0}, // clamped
		{400, 0, 0, 127}, // clamped
	}

	for _, test := range tests {
		r, g, b := Wheel(test.pos).RGB()
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("Wrong color for %d, got: %v,%v,%v, want: %v,%v,%v", test.pos, r, g, b, test.r, test.g, test.b)
		}
	}
}

func TestRainbowStepsAndWraps(t *testing.T) {
	st := NewState()
	b := newBuf(t, 5)

	require.NoError(t, Rainbow(st, b, 0, 0))
	assert.Equal(t, 1, st.RainbowStep)
	for i := 0; i < 5; i++ {
		assert.Equal(t, encoded(t, Wheel(i)), record(t, b, i), "pixel %d", i)
	}

	require.NoError(t, Rainbow(st, b, 0, 0))
	for i := 0; i < 5; i++ {
		assert.Equal(t, encoded(t, Wheel(i+1)), record(t, b, i), "pixel %d", i)
	}

	st.RainbowStep = 384
	require.NoError(t, Rainbow(st, b, 0, 0))
	assert.Equal(t, 0, st.RainbowStep)
}

func TestRainbowCycleSpreadsWheelOverRange(t *testing.T) {
	st := NewState()
	b := newBuf(t, 4)

	require.NoError(t, RainbowCycle(st, b, 0, 0))
	for i := 0; i < 4; i++ {
		assert.Equal(t, encoded(t, Wheel(i*96)), record(t, b, i), "pixel %d", i)
	}
	assert.Equal(t, 1, st.RainbowCycleStep)
}

func TestColorWipe(t *testing.T) {
	st := NewState()
	b := newBuf(t, 10)
	c, err := pixel.RGB(40, 0, 80)
	require.NoError(t, err)
	lit := encoded(t, c)

	// Dirty the strand so step 0's clear is observable.
	require.NoError(t, b.FillRGB(9, 9, 9, 0, 0))

	for step := 0; step < 10; step++ {
		require.NoError(t, ColorWipe(st, b, c, 0, 0))
		for i := 0; i < 10; i++ {
			if i <= step {
				assert.Equal(t, lit, record(t, b, i), "step %d pixel %d", step, i)
			} else {
				assert.Equal(t, off(t), record(t, b, i), "step %d pixel %d", step, i)
			}
		}
	}
	assert.Equal(t, 0, st.WipeStep, "cursor resets after the last pixel")

	// The next pass clears and starts over.
	require.NoError(t, ColorWipe(st, b, c, 0, 0))
	assert.Equal(t, lit, record(t, b, 0))
	assert.Equal(t, off(t), record(t, b, 1))
}

func TestColorChase(t *testing.T) {
	st := NewState()
	b := newBuf(t, 6)
	c, err := pixel.RGB(0, 90, 0)
	require.NoError(t, err)
	lit := encoded(t, c)

	// A strand starts encoded off; the chase only ever touches two pixels.
	require.NoError(t, b.FillOff(0, 0))

	for step := 0; step < 6; step++ {
		require.NoError(t, ColorChase(st, b, c, 0, 0))
		for i := 0; i < 6; i++ {
			if i == step {
				assert.Equal(t, lit, record(t, b, i), "step %d pixel %d", step, i)
			} else {
				assert.Equal(t, off(t), record(t, b, i), "step %d pixel %d", step, i)
			}
		}
	}
	assert.Equal(t, 0, st.ChaseStep)
}

func TestColorChaseSubRange(t *testing.T) {
	st := NewState()
	b := newBuf(t, 10)
	c, err := pixel.RGB(10, 20, 30)
	require.NoError(t, err)

	require.NoError(t, ColorChase(st, b, c, 2, 6))
	assert.Equal(t, encoded(t, c), record(t, b, 2))
	assert.Equal(t, 1, st.ChaseStep)

	st.ChaseStep = 3
	require.NoError(t, ColorChase(st, b, c, 2, 6))
	assert.Equal(t, encoded(t, c), record(t, b, 5))
	assert.Equal(t, 0, st.ChaseStep, "wraps once start+step reaches end")
}

func TestLarsonScannerBouncesBetweenEnds(t *testing.T) {
	st := NewState()
	b := newBuf(t, 10)
	c, err := pixel.RGB(200, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, -1, st.LarsonDir)
	require.NoError(t, LarsonScanner(st, b, c, 2, 0.75, 0, 0))
	assert.Equal(t, 1, st.LarsonDir, "reverses off the near end")
	assert.Equal(t, 1, st.LarsonStep)
	assert.Equal(t, 0, st.LarsonLast)

	st.LarsonStep = 9
	require.NoError(t, LarsonScanner(st, b, c, 2, 0.75, 0, 0))
	assert.Equal(t, -1, st.LarsonDir, "reverses off the far end")
	assert.Equal(t, 8, st.LarsonStep)
	assert.Equal(t, 9, st.LarsonLast)
}

func TestLarsonScannerTailFade(t *testing.T) {
	st := NewState()
	st.LarsonStep = 5
	st.LarsonDir = 1
	b := newBuf(t, 12)
	c, err := pixel.RGB(120, 60, 0)
	require.NoError(t, err)

	tail, fade := 2, 0.5
	require.NoError(t, LarsonScanner(st, b, c, tail, fade, 0, 0))

	// tail+1 pixels fade on each side of the cursor; the falloff is
	// (tail+1-d)/(tail+1)*fade at distance d, the cursor itself included.
	for d := 0; d <= tail; d++ {
		level := float64(tail+1-d) / float64(tail+1) * fade
		want := encoded(t, mustRGB(t, 120*level, 60*level, 0))
		assert.Equal(t, want, record(t, b, 5+d), "distance +%d", d)
		assert.Equal(t, want, record(t, b, 5-d), "distance -%d", d)
	}
	// One pixel beyond each tail is cleared.
	assert.Equal(t, off(t), record(t, b, 5+tail+1))
	assert.Equal(t, off(t), record(t, b, 5-tail-1))
}

func TestLarsonScannerClampsExcessFade(t *testing.T) {
	st := NewState()
	st.LarsonStep = 4
	st.LarsonDir = 1
	b := newBuf(t, 10)
	c, err := pixel.RGB(255, 255, 255)
	require.NoError(t, err)

	// fade=2.0 would push channels past 255 without the clamp.
	require.NoError(t, LarsonScanner(st, b, c, 2, 2.0, 0, 0))
	assert.Equal(t, encoded(t, c), record(t, b, 4))
}

func TestLarsonRainbowSweepsHue(t *testing.T) {
	st := NewState()
	st.LarsonStep = 3
	st.LarsonDir = 1
	b := newBuf(t, 12)

	require.NoError(t, LarsonRainbow(st, b, 2, 0.75, 0, 0))

	hue, err := pixel.Hue(3 * 360.0 / 12.0)
	require.NoError(t, err)
	r, g, bl := hue.Color().RGB()
	level := 0.75 // distance 0 falloff: (tail+1)/(tail+1)*fade
	want := encoded(t, mustRGB(t, r*level, g*level, bl*level))
	assert.Equal(t, want, record(t, b, 3))
}

func TestWaveStepZeroIsFlatColor(t *testing.T) {
	st := NewState()
	b := newBuf(t, 4)
	c, err := pixel.RGB(100, 50, 25)
	require.NoError(t, err)

	// sin(0)=0 everywhere at step 0: the peak branch blends by 1-y=1, which
	// leaves the color untouched.
	require.NoError(t, Wave(st, b, c, 1, 0, 0))
	for i := 0; i < 4; i++ {
		assert.Equal(t, encoded(t, c), record(t, b, i), "pixel %d", i)
	}
	assert.Equal(t, 1, st.WaveStep)
}

func TestWaveBlends(t *testing.T) {
	st := NewState()
	st.WaveStep = 1
	b := newBuf(t, 4)
	c, err := pixel.RGB(100, 0, 0)
	require.NoError(t, err)

	require.NoError(t, Wave(st, b, c, 1, 0, 0))

	// i=1: y=sin(pi/4)>0, peak branch blends toward white.
	y := 1.0 - math.Sin(math.Pi/4)
	want := encoded(t, mustRGB(t, 255-(255-100)*y, 255-255*y, 255-255*y))
	assert.Equal(t, want, record(t, b, 1))

	// i=2: y=sin(pi/2)=1, full white.
	assert.Equal(t, encoded(t, mustRGB(t, 255, 255, 255)), record(t, b, 2))
}

func mustRGB(t *testing.T, r, g, b float64) pixel.Color {
	t.Helper()
	c, err := pixel.RGB(r, g, b)
	require.NoError(t, err)
	return c
}
