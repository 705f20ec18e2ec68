package cpp

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"image2cpp/pkg/convert"
)

// DefaultMerged is the file merged output goes to when no path is given.
const DefaultMerged = "images.h"

// WriteError reports a destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "write " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func NewEmitter(fs afero.Fs, logger *zap.Logger, opts ...Option) *Emitter {
	e := &Emitter{
		fs:      fs,
		log:     logger,
		perLine: 16,
		dedupe:  true,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

type Emitter struct {
	fs  afero.Fs
	log *zap.Logger
	// options
	perLine int
	progmem bool
	dedupe  bool
}

// Single writes one image to path and returns the number of bytes written.
func (e *Emitter) Single(res *convert.Result, path string) (int, error) {
	var buf bytes.Buffer
	appendArray(&buf, Identifier(res.Source), res, e.progmem, e.perLine)
	return e.write(path, buf.Bytes())
}

// Merged writes all results, in order, to one file preceded by their total
// size.
func (e *Emitter) Merged(results []*convert.Result, path string) (int, error) {
	names := lo.Map(results, func(r *convert.Result, _ int) string {
		return Identifier(r.Source)
	})
	if e.dedupe {
		var dups map[string]int
		names, dups = uniqueNames(names)
		for name, n := range dups {
			e.log.With(zap.String("name", name), zap.Int("renamed", n)).Warn("duplicate array name")
		}
	}

	var buf bytes.Buffer
	appendTotal(&buf, Total(results))
	for i, res := range results {
		appendArray(&buf, names[i], res, e.progmem, e.perLine)
		buf.WriteByte('\n')
	}

	return e.write(path, buf.Bytes())
}

// Total sums the pixel data size of results.
func Total(results []*convert.Result) int {
	return lo.Reduce(results, func(total int, r *convert.Result, _ int) int {
		return total + r.Size()
	}, 0)
}

// write replaces path with content through a temporary file in the same
// directory, so a failed write never leaves a truncated header behind.
func (e *Emitter) write(path string, content []byte) (int, error) {
	dir := filepath.Dir(path)
	if exists, err := afero.DirExists(e.fs, dir); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	} else if !exists {
		if err2 := e.fs.MkdirAll(dir, 0755); err2 != nil {
			return 0, &WriteError{Path: path, Err: err2}
		}
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+xid.New().String())
	n, err := e.writeFile(tmp, content)
	if err == nil {
		err = e.fs.Rename(tmp, path)
	}
	if err != nil {
		_ = e.fs.Remove(tmp)
		return 0, &WriteError{Path: path, Err: err}
	}

	e.log.With(
		zap.String("path", path),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Debug("written")

	return n, nil
}

func (e *Emitter) writeFile(name string, content []byte) (n int, err error) {
	f, err := e.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if n, err = f.Write(content); err != nil {
		return n, err
	}
	return n, f.Sync()
}
