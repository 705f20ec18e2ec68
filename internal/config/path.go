package config

import (
	"path/filepath"
	"strings"
)

// withExt replaces the extension of path. A name made only of a leading dot
// part, like ".png", has no extension, and neither has a name ending in a dot.
func withExt(path, ext string) string {
	base := filepath.Base(path)
	old := filepath.Ext(base)
	if old == base || old == "." {
		old = ""
	}
	return strings.TrimSuffix(path, old) + ext
}
