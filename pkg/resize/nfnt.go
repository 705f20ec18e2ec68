package resize

import (
	"image"

	nfnt "github.com/nfnt/resize"
)

func init() {
	register("nfnt", &nfntResizer{})
}

// nfntResizer uses "github.com/nfnt/resize"
type nfntResizer struct{}

func (r *nfntResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return nfnt.Resize(uint(size.X), uint(size.Y), img, nfnt.Lanczos3), nil
}
