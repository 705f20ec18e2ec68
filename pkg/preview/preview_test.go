package preview

import (
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image2cpp/pkg/bitmap"
	"image2cpp/pkg/convert"
)

func TestSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewSaver(fs, "previews")
	require.NoError(t, err)
	assert.True(t, s.Enabled())

	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	bmp := bitmap.Encode(src, bitmap.WithTransparency(0))
	res := &convert.Result{Source: "1 logo.png", Width: 2, Height: 1, Pixels: bmp.Pix, Bitmap: bmp}

	name, err := s.Save(res)
	require.NoError(t, err)
	assert.Equal(t, "_1_logo_bmp.png", name)

	f, err := fs.Open("previews/_1_logo_bmp.png")
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a)
	r, g, b, _ := img.At(1, 0).RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0, 0}, []uint32{r, g, b})
}

func TestSaveDisabled(t *testing.T) {
	s, err := NewSaver(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.False(t, s.Enabled())

	name, err := s.Save(&convert.Result{})
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestSaveSameName(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := NewSaver(fs, "previews")
	require.NoError(t, err)

	var names []string
	for _, path := range []string{"a/x.png", "b/x.png", "c/x.jpg"} {
		bmp := bitmap.Encode(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
		res := &convert.Result{Path: path, Source: filepath.Base(path), Width: 1, Height: 1, Pixels: bmp.Pix, Bitmap: bmp}
		name, err := s.Save(res)
		require.NoError(t, err)
		names = append(names, name)
	}

	assert.Equal(t, []string{"x_bmp.png", "x_bmp_2.png", "x_bmp_3.png"}, names)
	entries, err := afero.ReadDir(fs, "previews")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
