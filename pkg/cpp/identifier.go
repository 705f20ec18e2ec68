package cpp

import (
	"regexp"
	"strconv"

	"image2cpp/pkg/convert"
)

var (
	nonWord      = regexp.MustCompile(`[^A-Za-z0-9_]`)
	leadingDigit = regexp.MustCompile(`^[0-9]`)
)

// Sanitize turns name into a valid C identifier: every character outside
// [A-Za-z0-9_] becomes an underscore and a leading digit gets one prepended.
func Sanitize(name string) string {
	name = nonWord.ReplaceAllString(name, "_")
	if leadingDigit.MatchString(name) {
		name = "_" + name
	}
	return name
}

// Identifier derives the array name for an image file.
func Identifier(path string) string {
	return Sanitize(convert.Stem(path) + "_bmp")
}

// uniqueNames suffixes repeated names with _2, _3, ... in order of appearance.
func uniqueNames(names []string) ([]string, map[string]int) {
	seen := make(map[string]bool, len(names))
	dups := map[string]int{}
	out := make([]string, len(names))

	for i, name := range names {
		candidate := name
		for n := 2; seen[candidate]; n++ {
			candidate = name + "_" + strconv.Itoa(n)
		}
		if candidate != name {
			dups[name]++
		}
		seen[candidate] = true
		out[i] = candidate
	}

	return out, dups
}
