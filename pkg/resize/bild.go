package resize

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

func init() {
	register("bild", &bildResizer{})
}

// bildResizer uses "github.com/anthonynsimon/bild/transform"
type bildResizer struct{}

func (r *bildResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return transform.Resize(img, size.X, size.Y, transform.Lanczos), nil
}
