package convert

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sergeymakinen/go-bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports an input that could not be read as an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "decode " + e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decode picks the BMP decoder by extension since it understands more header
// versions and compressions than the registered one; everything else goes
// through the registered image formats.
func decode(r io.Reader, name string, autoOrient bool) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".bmp") {
		return bmp.Decode(r)
	}
	return imaging.Decode(r, imaging.AutoOrientation(autoOrient))
}

// Stem is the base name of path without its last extension. A leading dot
// does not start an extension and neither does a trailing one.
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base || ext == "." {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
