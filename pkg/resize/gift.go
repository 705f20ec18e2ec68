package resize

import (
	"image"

	"github.com/disintegration/gift"
)

func init() {
	register("gift", &giftResizer{})
}

// giftResizer uses "github.com/disintegration/gift"
type giftResizer struct{}

func (r *giftResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	g := gift.New(gift.Resize(size.X, size.Y, gift.LanczosResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst, nil
}
