package resize

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	cases := []struct {
		in   image.Point
		maxW int
		maxH int
		want image.Point
	}{
		{image.Pt(300, 100), 240, 240, image.Pt(240, 80)},
		{image.Pt(100, 300), 240, 240, image.Pt(80, 240)},
		{image.Pt(240, 240), 240, 240, image.Pt(240, 240)},
		{image.Pt(10, 20), 240, 240, image.Pt(10, 20)},
		{image.Pt(480, 320), 320, 240, image.Pt(320, 213)},
		{image.Pt(1000, 1), 100, 100, image.Pt(100, 1)},
		{image.Pt(250, 100), 240, 240, image.Pt(240, 96)},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Bounds(c.in, c.maxW, c.maxH), "%v in %dx%d", c.in, c.maxW, c.maxH)
	}
}

func TestBoundsProperties(t *testing.T) {
	for w := 1; w <= 400; w += 37 {
		for h := 1; h <= 400; h += 41 {
			in := image.Pt(w, h)
			got := Bounds(in, 120, 90)

			assert.LessOrEqual(t, got.X, w)
			assert.LessOrEqual(t, got.Y, h)
			assert.LessOrEqual(t, got.X, 120)
			assert.LessOrEqual(t, got.Y, 90)

			if w <= 120 && h <= 90 {
				assert.Equal(t, in, got)
				continue
			}
			// aspect is kept within one pixel of the exact scale
			exactY := float64(got.X) * float64(h) / float64(w)
			exactX := float64(got.Y) * float64(w) / float64(h)
			assert.True(t,
				math.Abs(exactY-float64(got.Y)) <= 1 || math.Abs(exactX-float64(got.X)) <= 1,
				"%v -> %v", in, got)
		}
	}
}

func TestLookup(t *testing.T) {
	_, err := Lookup("nope")
	assert.Error(t, err)

	r, err := Lookup(Default)
	require.NoError(t, err)
	assert.NotNil(t, r)

	assert.Equal(t, []string{"bild", "box", "catmullrom", "gift", "lanczos", "linear", "nearest", "nfnt", "rez", "xdraw"}, Names())
}

func TestFitKeepsSmallImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	r, _ := Lookup(Default)

	dst, err := Fit(r, src, 240, 240)
	require.NoError(t, err)
	assert.Same(t, src, dst)
}

func TestFitRejectsEmptyBox(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 10))
	r, _ := Lookup(Default)

	_, err := Fit(r, src, 0, 240)
	assert.Error(t, err)
}

func TestFitAllBackends(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 96, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 96; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			r, err := Lookup(name)
			require.NoError(t, err)

			dst, err := Fit(r, src, 32, 32)
			require.NoError(t, err)
			assert.Equal(t, image.Pt(32, 16), dst.Bounds().Size())
		})
	}
}
