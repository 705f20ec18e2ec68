package resize

import (
	"image"

	"golang.org/x/image/draw"
)

func init() {
	register("xdraw", &xdrawResizer{scaler: draw.CatmullRom})
}

// xdrawResizer uses "golang.org/x/image/draw"
type xdrawResizer struct {
	scaler draw.Scaler
}

func (r *xdrawResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
