package bitmap

import (
	"encoding/binary"
	"image"
	"image/color"
)

// https://github.com/gonutz/framebuffer/blob/master/fb.go

// Transparent is the reserved pixel value marking "do not draw" for the
// renderer. An opaque pixel whose color packs to the same value cannot be
// told apart from it unless the encoder runs WithReservedSentinel.
const Transparent uint16 = 0x0001

// Model converts any color to its RGB565 representation.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return toRGB565(r, g, b)
})

func NewRGB565(r image.Rectangle) *RGB565 {
	return &RGB565{
		Pix:    make([]uint16, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// RGB565 is an in-memory image whose pixels are packed 16-bit values stored
// row by row. It implements the draw.Image interface.
type RGB565 struct {
	Pix    []uint16
	Stride int
	Rect   image.Rectangle

	transparent bool
}

// Bounds implements the image.Image (and draw.Image) interface.
func (d *RGB565) Bounds() image.Rectangle {
	return d.Rect
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (d *RGB565) ColorModel() color.Model {
	return Model
}

// Transparency reports whether Transparent pixels are read back as fully
// transparent instead of as a color.
func (d *RGB565) Transparency() bool {
	return d.transparent
}

func (d *RGB565) PixOffset(x, y int) int {
	return (y-d.Rect.Min.Y)*d.Stride + (x - d.Rect.Min.X)
}

// At implements the image.Image (and draw.Image) interface.
func (d *RGB565) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(d.Rect)) {
		return Color(0)
	}
	v := d.Pix[d.PixOffset(x, y)]
	if d.transparent && v == Transparent {
		return color.NRGBA{}
	}
	return Color(v)
}

// Set implements the draw.Image interface.
func (d *RGB565) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(d.Rect)) {
		return
	}
	r, g, b, a := c.RGBA()
	i := d.PixOffset(x, y)
	if d.transparent && a == 0 {
		d.Pix[i] = Transparent
		return
	}
	d.Pix[i] = uint16(toRGB565(r, g, b))
}

// Size returns the number of bytes the pixel data occupies on the target.
func (d *RGB565) Size() int {
	return 2 * len(d.Pix)
}

// Bytes serializes the pixels in row-major order using the given byte order.
// Most display controllers fed over a serial link expect little endian.
func (d *RGB565) Bytes(order binary.ByteOrder) []byte {
	w, h := d.Rect.Dx(), d.Rect.Dy()
	bs := make([]byte, 0, 2*w*h)
	var tmp [2]byte
	for y := 0; y < h; y++ {
		for _, v := range d.Pix[y*d.Stride : y*d.Stride+w] {
			order.PutUint16(tmp[:], v)
			bs = append(bs, tmp[:]...)
		}
	}
	return bs
}

// Pack reduces 8-bit channels to RGB565 by keeping the top 5, 6 and 5 bits of
// red, green and blue.
//
//	bit 76543210  76543210
//	    RRRRRGGG  GGGBBBBB
//	   high byte  low byte
func Pack(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)
}

// toRGB565 works on color.Color channels, which hold 16 significant bits, and
// keeps the highest 5 or 6 bits of each.
func toRGB565(r, g, b uint32) Color {
	// RRRRRGGGGGGBBBBB
	return Color((r & 0xF800) +
		((g & 0xFC00) >> 5) +
		((b & 0xF800) >> 11))
}

// Color is a packed RGB565 value. It implements the color.Color interface.
type Color uint16

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	// To convert a channel from 5 or 6 bits back to 16 bits the short bit
	// pattern is repeated until all 16 bits are filled, so the minimum and
	// maximum short values map to 0x0000 and 0xFFFF.
	//     GGGGGG0000000000 shifted << 5
	//     000000GGGGGG0000 shifted >> 1
	//     000000000000GGGG shifted >> 7
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x7E0)  // 00000GGGGGG00000
	bBits := uint32(c & 0x1F)   // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}
