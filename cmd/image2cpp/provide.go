package main

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"image2cpp/internal/config"
	"image2cpp/pkg/batch"
	"image2cpp/pkg/convert"
	"image2cpp/pkg/cpp"
	"image2cpp/pkg/device/inch35"
	"image2cpp/pkg/preview"
	"image2cpp/pkg/resize"
	"image2cpp/pkg/source"
)

func newResolver(fs afero.Fs, logger *zap.Logger) *source.Resolver {
	return source.NewResolver(fs, logger)
}

func newResizer(cfg *config.Config) (resize.Resizer, error) {
	return resize.Lookup(cfg.Filter)
}

func newConverter(cfg *config.Config, fs afero.Fs, rsz resize.Resizer, logger *zap.Logger) *convert.Converter {
	opts := []convert.Option{
		convert.WithBounds(cfg.Width, cfg.Height),
		convert.WithReservedSentinel(cfg.ReserveSentinel),
		convert.WithAutoOrientation(cfg.AutoOrient),
	}
	if cfg.Alpha != nil {
		opts = append(opts, convert.WithTransparency(*cfg.Alpha))
	}
	return convert.New(fs, rsz, logger, opts...)
}

func newEmitter(cfg *config.Config, fs afero.Fs, logger *zap.Logger) *cpp.Emitter {
	return cpp.NewEmitter(fs, logger,
		cpp.WithPerLine(cfg.PerLine),
		cpp.WithProgmem(cfg.Progmem),
		cpp.WithDedupe(cfg.Dedupe),
	)
}

func newSinks(cfg *config.Config, fs afero.Fs, logger *zap.Logger, lc fx.Lifecycle) ([]batch.Sink, error) {
	var sinks []batch.Sink

	saver, err := preview.NewSaver(fs, cfg.PreviewDir)
	if err != nil {
		return nil, err
	}
	if saver.Enabled() {
		sinks = append(sinks, batch.PreviewSink(saver, logger))
	}

	if cfg.Screen != "" {
		dev, err := inch35.Open(cfg.Screen, logger)
		if err != nil {
			return nil, err
		}
		if err := batch.StartScreen(dev, inch35.Brightness(cfg.ScreenLight), cfg.ScreenLandscape, cfg.ScreenInvert); err != nil {
			_ = dev.Close()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return batch.StopScreen(dev)
			},
		})
		sinks = append(sinks, batch.ScreenSink(dev, logger))
	}

	return sinks, nil
}

func newRunner(cfg *config.Config, resolver *source.Resolver, conv *convert.Converter, emitter *cpp.Emitter, sinks []batch.Sink, logger *zap.Logger) *batch.Runner {
	return batch.New(cfg, resolver, conv, emitter, logger, batch.WithSinks(sinks...))
}
