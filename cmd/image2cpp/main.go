package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"image2cpp/internal/config"
	"image2cpp/pkg/batch"
)

func main() {
	cfg := config.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: image2cpp [flags] IMAGE|PATTERN...\n")
		fmt.Fprintf(os.Stderr, "Convert image(s) to RGB565 C arrays\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	fs := afero.NewOsFs()
	if err := cfg.Finalize(flag.CommandLine, fs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(cfg.Patterns) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var runErr error
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			func() afero.Fs { return fs },
			newResolver,
			newResizer,
			newConverter,
			newEmitter,
			newSinks,
			newRunner,
		),
		fx.Invoke(func(lc fx.Lifecycle, r *batch.Runner) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					runErr = r.Run()
					return nil
				},
			})
		}),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if runErr != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, lc fx.Lifecycle) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if !cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zc.DisableStacktrace = true
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})

	return logger, nil
}
