package batch

import (
	"fmt"
	"io"
	"os"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"image2cpp/internal/config"
	"image2cpp/pkg/convert"
	"image2cpp/pkg/cpp"
	"image2cpp/pkg/source"
)

func New(cfg *config.Config, resolver *source.Resolver, conv *convert.Converter, emitter *cpp.Emitter, logger *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		resolver: resolver,
		conv:     conv,
		emitter:  emitter,
		log:      logger,
		out:      os.Stdout,
		progress: os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

type Runner struct {
	cfg      *config.Config
	resolver *source.Resolver
	conv     *convert.Converter
	emitter  *cpp.Emitter
	log      *zap.Logger
	// options
	out      io.Writer
	progress io.Writer
	sinks    []Sink
}

// Run converts every image the configured patterns resolve to. Images that
// fail are logged and skipped unless FailFast is set; the returned error
// combines all of them.
func (r *Runner) Run() error {
	files, err := r.resolver.Resolve(r.cfg.Patterns...)
	if errors.Is(err, source.ErrNoMatches) {
		fmt.Fprintln(r.out, "❌ No matching image files found")
		return nil
	} else if err != nil {
		return err
	}

	bar := r.newBar(len(files))
	defer func() {
		_ = bar.Finish()
	}()

	if r.cfg.Merge {
		return r.merged(files, bar)
	}
	return r.single(files, bar)
}

func (r *Runner) newBar(n int) *progressbar.ProgressBar {
	w := r.progress
	if r.cfg.Quiet {
		w = io.Discard
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *Runner) single(files []string, bar *progressbar.ProgressBar) error {
	if r.cfg.Output != "" && len(files) > 1 {
		r.log.With(zap.String("output", r.cfg.Output), zap.Int("images", len(files))).
			Warn("every image is written to the same output, only the last one is kept")
	}

	var errs error
	for _, file := range files {
		err := r.singleOne(file)
		_ = bar.Add(1)
		if err != nil {
			r.log.With(zap.String("path", file), zap.Error(err)).Error("conversion failed")
			errs = multierr.Append(errs, err)
			if r.cfg.FailFast {
				return errs
			}
		}
	}

	return errs
}

func (r *Runner) singleOne(file string) error {
	res, err := r.conv.Convert(file)
	if err != nil {
		return err
	}
	r.present(res)

	out := r.cfg.SingleOutput(file)
	if _, err := r.emitter.Single(res, out); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "✅ %s → %s\n", res.Source, out)
	return nil
}

func (r *Runner) merged(files []string, bar *progressbar.ProgressBar) error {
	var errs error
	var results []*convert.Result

	for _, file := range files {
		res, err := r.conv.Convert(file)
		_ = bar.Add(1)
		if err != nil {
			r.log.With(zap.String("path", file), zap.Error(err)).Error("conversion failed")
			errs = multierr.Append(errs, err)
			if r.cfg.FailFast {
				return errs
			}
			continue
		}
		r.present(res)
		results = append(results, res)
	}

	if len(results) == 0 {
		return errs
	}

	out := r.cfg.MergedOutput()
	if _, err := r.emitter.Merged(results, out); err != nil {
		return multierr.Append(errs, err)
	}

	r.log.With(
		zap.String("output", out),
		zap.String("total", bytesize.New(float64(cpp.Total(results))).String()),
	).Debug("merged")
	fmt.Fprintf(r.out, "✅ Merged %d images → %s\n", len(results), out)

	return errs
}

// present hands res to every sink. Sink failures never fail the conversion.
func (r *Runner) present(res *convert.Result) {
	for _, s := range r.sinks {
		if err := s.Present(res); err != nil {
			r.log.With(zap.String("path", res.Path), zap.Error(err)).Warn("preview failed")
		}
	}
}
