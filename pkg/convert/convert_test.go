package convert

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/image/bmp"

	"image2cpp/pkg/bitmap"
	"image2cpp/pkg/resize"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, fs afero.Fs, path string, img image.Image) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0644))
}

func newConverter(t *testing.T, fs afero.Fs, opts ...Option) *Converter {
	r, err := resize.Lookup(resize.Default)
	require.NoError(t, err)
	return New(fs, r, zaptest.NewLogger(t), opts...)
}

func TestConvertDownscales(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "img/wide.png", solid(300, 100, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}))

	res, err := newConverter(t, fs, WithBounds(240, 240)).Convert("img/wide.png")

	require.NoError(t, err)
	assert.Equal(t, "wide.png", res.Source)
	assert.Equal(t, 240, res.Width)
	assert.Equal(t, 80, res.Height)
	assert.Len(t, res.Pixels, 19200)
	assert.Equal(t, 38400, res.Size())
	assert.Equal(t, uint16(0xFFFF), res.Pixels[0])
	assert.Equal(t, uint16(0xFFFF), res.Pixels[len(res.Pixels)-1])
}

func TestConvertKeepsSmallImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := solid(3, 2, color.NRGBA{R: 0xFF, A: 0xFF})
	src.SetNRGBA(1, 1, color.NRGBA{G: 0xFF, A: 0xFF})
	writePNG(t, fs, "small.png", src)

	res, err := newConverter(t, fs).Convert("small.png")

	require.NoError(t, err)
	assert.Equal(t, 3, res.Width)
	assert.Equal(t, 2, res.Height)
	assert.Equal(t, []uint16{0xF800, 0xF800, 0xF800, 0xF800, 0x07E0, 0xF800}, res.Pixels)
}

func TestConvertTransparency(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := solid(2, 1, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0x10})
	writePNG(t, fs, "alpha.png", src)

	res, err := newConverter(t, fs, WithTransparency(0x10)).Convert("alpha.png")
	require.NoError(t, err)
	assert.Equal(t, []uint16{bitmap.Transparent, 0xFFFF}, res.Pixels)

	res, err = newConverter(t, fs).Convert("alpha.png")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xF800, 0xFFFF}, res.Pixels)
}

func TestConvertDropsAlphaBeforeResize(t *testing.T) {
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "clear.png", solid(300, 100, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF}))
	writePNG(t, fs, "tiny.png", solid(3, 1, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF}))

	res, err := newConverter(t, fs).Convert("clear.png")
	require.NoError(t, err)
	assert.Equal(t, 240, res.Width)
	for i, p := range res.Pixels {
		if !assert.Equal(t, uint16(0xFFFF), p, "pixel %d", i) {
			break
		}
	}

	res, err = newConverter(t, fs).Convert("tiny.png")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xFFFF, 0xFFFF, 0xFFFF}, res.Pixels)
}

func TestConvertBMP(t *testing.T) {
	fs := afero.NewMemMapFs()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, solid(4, 4, color.NRGBA{B: 0xFF, A: 0xFF})))
	require.NoError(t, afero.WriteFile(fs, "blue.BMP", buf.Bytes(), 0644))

	res, err := newConverter(t, fs).Convert("blue.BMP")

	require.NoError(t, err)
	assert.Len(t, res.Pixels, 16)
	assert.Equal(t, uint16(0x001F), res.Pixels[5])
}

func TestConvertDecodeError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "broken.png", []byte("not an image"), 0644))

	_, err := newConverter(t, fs).Convert("broken.png")

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "broken.png", de.Path)

	_, err = newConverter(t, fs).Convert("missing.png")
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "missing.png", de.Path)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "1abc", Stem("dir/1abc.png"))
	assert.Equal(t, "my pic", Stem("my pic.png"))
	assert.Equal(t, "a.b", Stem("a.b.jpg"))
	assert.Equal(t, "noext", Stem("noext"))
	assert.Equal(t, ".hidden", Stem(".hidden"))
	assert.Equal(t, "file.", Stem("dir/file."))
}
