package source

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNoMatches is returned when none of the patterns resolve to a file.
var ErrNoMatches = errors.New("no matching image files found")

func NewResolver(fs afero.Fs, logger *zap.Logger) *Resolver {
	return &Resolver{fs: fs, log: logger}
}

type Resolver struct {
	fs  afero.Fs
	log *zap.Logger
}

// Resolve expands every pattern and keeps the regular files in first-seen
// order, each path at most once.
func (r *Resolver) Resolve(patterns ...string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		matches, err := afero.Glob(r.fs, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "bad pattern %q", pattern)
		}

		for _, m := range matches {
			if fi, err := r.fs.Stat(m); err != nil || !fi.Mode().IsRegular() {
				r.log.With(zap.String("path", m)).Debug("skip non-file")
				continue
			}
			files = append(files, m)
		}

		r.log.With(zap.String("pattern", pattern), zap.Int("matches", len(matches))).Debug("resolved")
	}

	files = lo.Uniq(files)
	if len(files) == 0 {
		return nil, ErrNoMatches
	}

	return files, nil
}
