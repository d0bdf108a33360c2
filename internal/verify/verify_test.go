// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verify

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scan2pdf/internal/document"
	"github.com/pdiddy/scan2pdf/internal/imagesize"
)

// writeDoc builds a PDF with one page per orientation given.
func writeDoc(t *testing.T, orientations ...string) string {
	t.Helper()
	dir := t.TempDir()

	img := filepath.Join(dir, "scan.png")
	f, err := os.Create(img)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 40, 60))))
	require.NoError(t, f.Close())

	doc := document.New()
	for _, o := range orientations {
		require.NoError(t, doc.AddPage(o, "A5"))
		require.NoError(t, doc.Image(imagesize.Info{Path: img, Type: "png", Native: true}, 1, 1, 2))
	}
	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, doc.Save(out))
	return out
}

func TestFile(t *testing.T) {
	path := writeDoc(t, "P", "L", "P")

	n, err := File(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = File(path, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = File(path, 2)
	require.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, err.Error(), "has 3 page(s), want 2")
}

func TestFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := File(path, 1)
	assert.Error(t, err)

	_, err = File(filepath.Join(t.TempDir(), "missing.pdf"), -1)
	assert.Error(t, err)
}
