// Package resize scales decoded images down into a bounding box.
//
// Several resampling backends are available. They only differ in output
// quality and speed; all of them are driven through the same Fit logic so the
// output dimensions never depend on the backend.
package resize

import (
	"image"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const Default = "lanczos"

// Resizer scales img to exactly size.
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

var registry = map[string]Resizer{}

func register(name string, r Resizer) {
	registry[name] = r
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Resizer, error) {
	r, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown resize filter %q", name)
	}
	return r, nil
}

// Names lists every registered backend, sorted.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Bounds computes the size img ends up with inside a maxW x maxH box. Sizes
// already inside the box are returned as is; larger ones are scaled down so
// the more constrained side meets its bound exactly.
func Bounds(size image.Point, maxW, maxH int) image.Point {
	w, h := size.X, size.Y
	if w <= maxW && h <= maxH {
		return size
	}

	srcAspect := float64(w) / float64(h)
	maxAspect := float64(maxW) / float64(maxH)

	var nw, nh int
	if srcAspect > maxAspect {
		nw = maxW
		nh = int(float64(nw)/srcAspect + 0.5)
	} else {
		nh = maxH
		nw = int(float64(nh)*srcAspect + 0.5)
	}

	return image.Pt(lo.Max([]int{nw, 1}), lo.Max([]int{nh, 1}))
}

// Fit scales img down into the box using r. Images that already fit are
// returned untouched.
func Fit(r Resizer, img image.Image, maxW, maxH int) (image.Image, error) {
	if maxW <= 0 || maxH <= 0 {
		return nil, errors.Errorf("invalid bounding box %dx%d", maxW, maxH)
	}

	size := img.Bounds().Size()
	target := Bounds(size, maxW, maxH)
	if target == size {
		return img, nil
	}

	dst, err := r.Resize(img, target)
	if err != nil {
		return nil, errors.Wrapf(err, "resize %dx%d to %dx%d", size.X, size.Y, target.X, target.Y)
	}
	return dst, nil
}
