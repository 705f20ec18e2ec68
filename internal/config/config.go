package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"image2cpp/pkg/cpp"
	"image2cpp/pkg/resize"
)

// Config holds everything a conversion run needs. It is built once from the
// command line and passed to each component.
type Config struct {
	Patterns []string

	Output  string
	Width   int
	Height  int
	Merge   bool
	Alpha   *uint8
	Progmem bool
	PerLine int
	Ext     string

	Filter          string
	AutoOrient      bool
	ReserveSentinel bool
	Dedupe          bool
	FailFast        bool

	PreviewDir  string
	Screen      string
	ScreenLight uint8

	ScreenLandscape bool
	ScreenInvert    bool

	Quiet bool
	Debug bool

	alpha int
}

// Bind registers the command line flags on fs. The returned Config is only
// complete after fs.Parse and Finalize.
func Bind(fs *flag.FlagSet) *Config {
	c := &Config{}

	fs.StringVarP(&c.Output, "output", "o", "", "output header file")
	fs.IntVarP(&c.Width, "width", "x", 240, "max width")
	fs.IntVarP(&c.Height, "height", "y", 240, "max height")
	fs.BoolVarP(&c.Merge, "merge", "m", false, "merge all images into one header")
	fs.IntVarP(&c.alpha, "transparent", "t", -1, "enable transparency, pixels with alpha <= ALPHA become transparent")
	fs.Lookup("transparent").NoOptDefVal = "0"
	fs.BoolVar(&c.Progmem, "progmem", false, "tag arrays with PROGMEM (default: on when merging)")
	fs.IntVar(&c.PerLine, "per-line", 16, "values per line")
	fs.StringVar(&c.Ext, "ext", ".h", "extension of per-image output files")

	fs.StringVar(&c.Filter, "filter", resize.Default, "resize filter: "+strings.Join(resize.Names(), ", "))
	fs.BoolVar(&c.AutoOrient, "auto-orient", false, "apply EXIF orientation")
	fs.BoolVar(&c.ReserveSentinel, "reserve-sentinel", false, "never emit the transparent value for opaque pixels")
	fs.BoolVar(&c.Dedupe, "dedupe", true, "rename repeated array names when merging")
	fs.BoolVar(&c.FailFast, "fail-fast", false, "stop at the first image that fails")

	fs.StringVar(&c.PreviewDir, "preview-dir", "", "write a PNG of every converted bitmap into this dir")
	fs.StringVar(&c.Screen, "screen", "", "serial port name of a 3.5 inch USB screen to draw on")
	fs.Uint8Var(&c.ScreenLight, "screen-light", 50, "screen backlight percent")
	fs.BoolVar(&c.ScreenLandscape, "screen-landscape", false, "use the screen in landscape mode")
	fs.BoolVar(&c.ScreenInvert, "screen-invert", false, "turn the screen upside down")

	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "hide progress bar")
	fs.BoolVar(&c.Debug, "debug", false, "set debug")

	return c
}

// Finalize resolves the values that depend on what was set on the command
// line and validates the result. files is consulted to tell a detached
// transparency threshold from an input file name.
func (c *Config) Finalize(fs *flag.FlagSet, files afero.Fs) error {
	c.Patterns = fs.Args()

	if fs.Changed("transparent") {
		if c.alpha == 0 && len(c.Patterns) > 0 {
			if v, ok := detachedThreshold(c.Patterns[0], files); ok {
				c.alpha = v
				c.Patterns = c.Patterns[1:]
			}
		}
		if c.alpha < 0 || c.alpha > 255 {
			return errors.Errorf("transparency threshold %d out of range 0-255", c.alpha)
		}
		a := uint8(c.alpha)
		c.Alpha = &a
	}

	if !fs.Changed("progmem") {
		c.Progmem = c.Merge
	}

	return c.Validate()
}

// detachedThreshold reports whether arg, the word following a bare -t, is a
// threshold rather than an input. "-t 128 a.png" means threshold 128 unless a
// file named 128 exists.
func detachedThreshold(arg string, files afero.Fs) (int, bool) {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	if exists, _ := afero.Exists(files, arg); exists {
		return 0, false
	}
	return v, true
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.PerLine <= 0 {
		return errors.New("per-line must be positive")
	}
	if _, err := resize.Lookup(c.Filter); err != nil {
		return err
	}
	if c.ScreenLight > 100 {
		return errors.Errorf("screen light %d out of range 0-100", c.ScreenLight)
	}
	return nil
}

// MergedOutput is the destination of merged mode.
func (c *Config) MergedOutput() string {
	if c.Output != "" {
		return c.Output
	}
	return cpp.DefaultMerged
}

// SingleOutput is the destination for one image in single mode. An explicit
// output path is used for every image, so with several inputs only the last
// one survives.
func (c *Config) SingleOutput(input string) string {
	if c.Output != "" {
		return c.Output
	}
	ext := c.Ext
	if ext == "" {
		ext = ".h"
	}
	return withExt(input, ext)
}
