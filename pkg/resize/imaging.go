package resize

import (
	"image"

	"github.com/disintegration/imaging"
)

func init() {
	register("lanczos", &imagingResizer{filter: imaging.Lanczos})
	register("catmullrom", &imagingResizer{filter: imaging.CatmullRom})
	register("linear", &imagingResizer{filter: imaging.Linear})
	register("box", &imagingResizer{filter: imaging.Box})
	register("nearest", &imagingResizer{filter: imaging.NearestNeighbor})
}

// imagingResizer uses "github.com/disintegration/imaging"
type imagingResizer struct {
	filter imaging.ResampleFilter
}

func (r *imagingResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	return imaging.Resize(img, size.X, size.Y, r.filter), nil
}
