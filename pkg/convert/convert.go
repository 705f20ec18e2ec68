package convert

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"image2cpp/pkg/bitmap"
	"image2cpp/pkg/resize"
)

// Result is one converted image. It is not modified after Convert returns.
type Result struct {
	Path   string
	Source string
	Width  int
	Height int
	Pixels []uint16
	Bitmap *bitmap.RGB565
}

// Size is the number of bytes the pixel array occupies as uint16_t data.
func (r *Result) Size() int {
	return 2 * len(r.Pixels)
}

func New(fs afero.Fs, rsz resize.Resizer, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		fs:   fs,
		rsz:  rsz,
		log:  logger,
		maxW: 240,
		maxH: 240,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Converter struct {
	fs  afero.Fs
	rsz resize.Resizer
	log *zap.Logger
	// options
	maxW       int
	maxH       int
	alpha      *uint8
	reserved   bool
	autoOrient bool
}

// Convert decodes the file at path and quantizes it.
func (c *Converter) Convert(path string) (*Result, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := decode(f, path, c.autoOrient)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return c.ConvertImage(path, img)
}

// ConvertImage fits an already decoded image into the bounding box and packs
// its pixels. path only names the result.
func (c *Converter) ConvertImage(path string, img image.Image) (*Result, error) {
	src := img.Bounds().Size()

	if c.alpha == nil {
		img = opaque(img)
	}

	fitted, err := resize.Fit(c.rsz, img, c.maxW, c.maxH)
	if err != nil {
		return nil, errors.Wrapf(err, "convert %s", path)
	}

	var opts []bitmap.Option
	if c.alpha != nil {
		opts = append(opts, bitmap.WithTransparency(*c.alpha))
	}
	if c.reserved {
		opts = append(opts, bitmap.WithReservedSentinel())
	}
	bmp := bitmap.Encode(fitted, opts...)

	res := &Result{
		Path:   path,
		Source: filepath.Base(path),
		Width:  bmp.Rect.Dx(),
		Height: bmp.Rect.Dy(),
		Pixels: bmp.Pix,
		Bitmap: bmp,
	}

	c.log.With(
		zap.String("path", path),
		zap.String("src", sizeString(src)),
		zap.String("dst", sizeString(image.Pt(res.Width, res.Height))),
		zap.String("size", bytesize.New(float64(res.Size())).String()),
	).Debug("converted")

	return res, nil
}

func sizeString(p image.Point) string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}

// opaque drops the alpha channel, keeping the straight colors. Resampling
// would otherwise weight colors by alpha and darken transparent areas.
func opaque(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xFF
	}
	return dst
}
