package proto

import (
	"image"

	"image2cpp/pkg/bitmap"
)

// Control is a display the converted bitmaps can be previewed on.
type Control interface {
	Startup() error
	Shutdown() error
	Close() error

	SetLight(light uint8) error
	SetRotate(landscape bool, invert bool) error

	Size() image.Point
	DrawBitmap(posX uint16, posY uint16, bmp *bitmap.RGB565) error
}
