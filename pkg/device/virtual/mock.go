package virtual

import (
	"image"

	"go.uber.org/zap"

	"image2cpp/pkg/bitmap"
	"image2cpp/pkg/proto"
)

func Mock(logger *zap.Logger, width, height int) *Mocker {
	return &Mocker{l: logger, size: image.Pt(width, height)}
}

// Mocker logs every call and remembers where bitmaps were drawn.
type Mocker struct {
	l     *zap.Logger
	size  image.Point
	Draws []image.Rectangle
	Light uint8
	Calls []string
}

var _ proto.Control = (*Mocker)(nil)

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	m.Calls = append(m.Calls, "startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.Info("shutdown")
	m.Calls = append(m.Calls, "shutdown")
	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	m.Calls = append(m.Calls, "close")
	return nil
}

func (m *Mocker) SetLight(light uint8) error {
	m.l.With(zap.Uint8("light", light)).Info("set-light")
	m.Light = light
	m.Calls = append(m.Calls, "set-light")
	return nil
}

func (m *Mocker) SetRotate(landscape bool, invert bool) error {
	m.l.With(zap.Bool("landscape", landscape), zap.Bool("invert", invert)).Info("set-rotate")
	m.Calls = append(m.Calls, "set-rotate")
	if landscape && m.size.X < m.size.Y || !landscape && m.size.X > m.size.Y {
		m.size = image.Pt(m.size.Y, m.size.X)
	}
	return nil
}

func (m *Mocker) Size() image.Point {
	return m.size
}

func (m *Mocker) DrawBitmap(posX uint16, posY uint16, bmp *bitmap.RGB565) error {
	r := bmp.Bounds().Add(image.Pt(int(posX), int(posY)))
	m.l.With(
		zap.Uint16("x", posX),
		zap.Uint16("y", posY),
		zap.Int("w", r.Dx()),
		zap.Int("h", r.Dy()),
	).Info("draw-bitmap")
	m.Draws = append(m.Draws, r)
	return nil
}
