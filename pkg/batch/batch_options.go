package batch

import (
	"io"
)

type Option func(r *Runner)

// WithOutput sets where the per-file confirmation lines go.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		r.progress = w
	}
}

func WithSinks(sinks ...Sink) Option {
	return func(r *Runner) {
		r.sinks = append(r.sinks, sinks...)
	}
}
