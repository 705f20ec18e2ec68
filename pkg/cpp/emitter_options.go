package cpp

type Option func(e *Emitter)

// WithPerLine sets how many values go on one line.
func WithPerLine(n int) Option {
	return func(e *Emitter) {
		if n > 0 {
			e.perLine = n
		}
	}
}

// WithProgmem tags every array with the PROGMEM placement attribute.
func WithProgmem(enabled bool) Option {
	return func(e *Emitter) {
		e.progmem = enabled
	}
}

// WithDedupe controls renaming of repeated array names in merged output.
func WithDedupe(enabled bool) Option {
	return func(e *Emitter) {
		e.dedupe = enabled
	}
}
