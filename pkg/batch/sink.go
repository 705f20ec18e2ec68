package batch

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"image2cpp/pkg/convert"
	"image2cpp/pkg/preview"
	"image2cpp/pkg/proto"
)

// Sink receives every successfully converted image before it is emitted.
type Sink interface {
	Present(res *convert.Result) error
}

func PreviewSink(s *preview.Saver, logger *zap.Logger) Sink {
	return &previewSink{s: s, log: logger}
}

type previewSink struct {
	s   *preview.Saver
	log *zap.Logger
}

func (p *previewSink) Present(res *convert.Result) error {
	name, err := p.s.Save(res)
	if err != nil {
		return err
	}
	p.log.With(zap.String("path", res.Path), zap.String("preview", name)).Debug("preview saved")
	return nil
}

// StartScreen wakes dev up and applies the backlight and orientation.
func StartScreen(dev proto.Control, light uint8, landscape, invert bool) error {
	if err := dev.Startup(); err != nil {
		return err
	}
	if err := dev.SetLight(light); err != nil {
		return err
	}
	return dev.SetRotate(landscape, invert)
}

// StopScreen puts dev to sleep and releases it. The port is closed even when
// the shutdown command fails.
func StopScreen(dev proto.Control) error {
	return multierr.Append(dev.Shutdown(), dev.Close())
}

// ScreenSink draws every bitmap centered on dev. Bitmaps larger than the
// screen are skipped.
func ScreenSink(dev proto.Control, logger *zap.Logger) Sink {
	return &screenSink{dev: dev, log: logger}
}

type screenSink struct {
	dev proto.Control
	log *zap.Logger
}

func (s *screenSink) Present(res *convert.Result) error {
	screen := s.dev.Size()
	size := res.Bitmap.Bounds().Size()
	if size.X > screen.X || size.Y > screen.Y {
		s.log.With(
			zap.String("path", res.Path),
			zap.String("bitmap", size.String()),
			zap.String("screen", screen.String()),
		).Info("bitmap larger than screen, skip")
		return nil
	}

	at := screen.Sub(size).Div(2)
	return s.dev.DrawBitmap(uint16(at.X), uint16(at.Y), res.Bitmap)
}
