// Package preview renders converted bitmaps back to PNG so the effect of the
// RGB565 reduction can be checked without flashing a device.
package preview

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"image2cpp/pkg/convert"
	"image2cpp/pkg/cpp"
)

func newFs(fs afero.Fs, path string) (afero.Fs, error) {
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		if err2 := fs.MkdirAll(path, 0755); err2 != nil {
			return nil, err2
		}
	}
	return afero.NewBasePathFs(fs, path), nil
}

func NewSaver(fs afero.Fs, dir string) (*Saver, error) {
	s := &Saver{}

	if dir == "" {
		return s, nil
	}

	if bfs, err := newFs(fs, dir); err != nil {
		return nil, errors.Wrap(err, "create preview dir failed")
	} else {
		s.fs = bfs
	}

	return s, nil
}

// Saver writes one PNG per result. A Saver without a directory does nothing.
// Results sharing an array name get numbered files instead of overwriting
// each other.
type Saver struct {
	fs   afero.Fs
	used map[string]bool
}

func (s *Saver) Enabled() bool {
	return s.fs != nil
}

func (s *Saver) filename(res *convert.Result) string {
	if s.used == nil {
		s.used = make(map[string]bool)
	}

	base := cpp.Identifier(res.Source)
	name := base
	for n := 2; s.used[name]; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	s.used[name] = true
	return name + ".png"
}

// Save encodes the quantized bitmap of res and returns the file name used
// inside the preview directory.
func (s *Saver) Save(res *convert.Result) (string, error) {
	if s.fs == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, res.Bitmap); err != nil {
		return "", errors.Wrapf(err, "encode preview of %s", res.Source)
	}

	name := s.filename(res)
	if err := afero.WriteFile(s.fs, name, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrapf(err, "write preview %s", name)
	}

	return name, nil
}
