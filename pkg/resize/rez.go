package resize

import (
	"image"

	"github.com/bamiaux/rez"
	"github.com/disintegration/imaging"
)

func init() {
	register("rez", &rezResizer{})
}

// rezResizer uses "github.com/bamiaux/rez"
type rezResizer struct{}

func (r *rezResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	// rez only handles a few concrete image types; NRGBA keeps straight alpha
	src := imaging.Clone(img)
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	if err := rez.Convert(dst, src, rez.NewLanczosFilter(3)); err != nil {
		return nil, err
	}
	return dst, nil
}
