package bitmap

import (
	"image"

	"github.com/disintegration/imaging"
)

type Option func(e *encoder)

// WithTransparency turns every pixel whose alpha is at or below threshold
// into Transparent.
func WithTransparency(threshold uint8) Option {
	return func(e *encoder) {
		e.transparent = true
		e.threshold = threshold
	}
}

// WithReservedSentinel remaps opaque pixels that would pack to Transparent
// onto black, so Transparent only ever comes from the alpha test.
func WithReservedSentinel() Option {
	return func(e *encoder) {
		e.reserved = true
	}
}

type encoder struct {
	transparent bool
	threshold   uint8
	reserved    bool
}

func (e *encoder) pixel(r, g, b, a uint8) uint16 {
	if e.transparent && a <= e.threshold {
		return Transparent
	}
	v := Pack(r, g, b)
	if e.reserved && v == Transparent {
		return 0x0000
	}
	return v
}

// Encode quantizes src to RGB565. Channels are read non-premultiplied and the
// alpha channel only takes part in the transparency test. The result always
// starts at the origin and its Pix is laid out row by row, top to bottom.
func Encode(src image.Image, opts ...Option) *RGB565 {
	e := &encoder{}
	for _, opt := range opts {
		opt(e)
	}

	n := toNRGBA(src)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	d := NewRGB565(image.Rect(0, 0, w, h))
	d.transparent = e.transparent

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*n.Stride + x*4
			p := n.Pix[i : i+4 : i+4]
			d.Pix[y*d.Stride+x] = e.pixel(p[0], p[1], p[2], p[3])
		}
	}

	return d
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(src)
}
