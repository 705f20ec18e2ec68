package source

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newFs(t *testing.T, files ...string) afero.Fs {
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0644))
	}
	return fs
}

func TestResolve(t *testing.T) {
	fs := newFs(t, "img/a.png", "img/b.png", "img/c.jpg", "other/d.png")
	require.NoError(t, fs.MkdirAll("img/dir.png", 0755))

	r := NewResolver(fs, zaptest.NewLogger(t))
	files, err := r.Resolve("img/*.png", "img/a.png", "img/*.jpg")

	require.NoError(t, err)
	assert.Equal(t, []string{"img/a.png", "img/b.png", "img/c.jpg"}, files)
}

func TestResolveLiteralPath(t *testing.T) {
	fs := newFs(t, "img/logo.png")

	files, err := NewResolver(fs, zaptest.NewLogger(t)).Resolve("img/logo.png", "img/missing.png")

	require.NoError(t, err)
	assert.Equal(t, []string{"img/logo.png"}, files)
}

func TestResolveNoMatches(t *testing.T) {
	fs := newFs(t, "img/a.txt")

	_, err := NewResolver(fs, zaptest.NewLogger(t)).Resolve("img/*.png")

	assert.ErrorIs(t, err, ErrNoMatches)
}

func TestResolveBadPattern(t *testing.T) {
	fs := newFs(t, "img/a.png")

	_, err := NewResolver(fs, zaptest.NewLogger(t)).Resolve("img/[")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatches)
}
