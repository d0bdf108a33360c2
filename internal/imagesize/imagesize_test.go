// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imagesize

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestRead(t *testing.T) {
	rgba := func(w, h int) image.Image { return image.NewRGBA(image.Rect(0, 0, w, h)) }
	gray16 := func(w, h int) image.Image { return image.NewGray16(image.Rect(0, 0, w, h)) }
	gray := func(w, h int) image.Image { return image.NewGray(image.Rect(0, 0, w, h)) }

	tests := []struct {
		name          string
		file          string
		encode        func(io.Writer, image.Image) error
		img           func(w, h int) image.Image
		width, height int
		wantType      string
		wantNative    bool
	}{
		{
			name: "jpeg portrait",
			file: "scan.jpg",
			encode: func(w io.Writer, m image.Image) error {
				return jpeg.Encode(w, m, nil)
			},
			img:   rgba,
			width: 30, height: 40, wantType: "jpg", wantNative: true,
		},
		{
			name:   "png landscape",
			file:   "scan.png",
			encode: png.Encode,
			img:    rgba,
			width:  64, height: 16, wantType: "png", wantNative: true,
		},
		{
			name:   "16-bit png needs re-encoding",
			file:   "deep.png",
			encode: png.Encode,
			img:    gray16,
			width:  20, height: 10, wantType: "png",
		},
		{
			name: "gif square",
			file: "scan.gif",
			encode: func(w io.Writer, m image.Image) error {
				return gif.Encode(w, m, nil)
			},
			img:   rgba,
			width: 8, height: 8, wantType: "gif", wantNative: true,
		},
		{
			name: "tiff",
			file: "scan.tif",
			encode: func(w io.Writer, m image.Image) error {
				return tiff.Encode(w, m, nil)
			},
			img:   rgba,
			width: 12, height: 34, wantType: "tiff",
		},
		{
			name:   "bmp",
			file:   "scan.bmp",
			encode: bmp.Encode,
			img:    gray,
			width:  9, height: 4, wantType: "bmp",
		},
		{
			name:   "type comes from content not extension",
			file:   "mislabeled.jpg",
			encode: png.Encode,
			img:    rgba,
			width:  5, height: 7, wantType: "png", wantNative: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeImage(t, path, tt.img(tt.width, tt.height), tt.encode)

			info, err := Reader{}.Read(path)
			require.NoError(t, err)
			assert.Equal(t, Info{
				Path:   path,
				Width:  tt.width,
				Height: tt.height,
				Type:   tt.wantType,
				Native: tt.wantNative,
			}, info)
		})
	}
}

func TestReadInterlacedPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 6, 3))))
	data := buf.Bytes()

	// Flip the IHDR interlace byte and fix the chunk CRC.
	data[28] = 1
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))

	path := filepath.Join(t.TempDir(), "interlaced.png")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	info, err := Reader{}.Read(path)
	require.NoError(t, err)
	assert.Equal(t, 6, info.Width)
	assert.Equal(t, "png", info.Type)
	assert.False(t, info.Native)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.jpg")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	text := filepath.Join(dir, "notes.jpg")
	require.NoError(t, os.WriteFile(text, []byte("not an image at all"), 0o644))

	truncated := filepath.Join(dir, "truncated.png")
	require.NoError(t, os.WriteFile(truncated, []byte("\x89PNG\r\n\x1a\n"), 0o644))

	for _, path := range []string{empty, text, truncated, filepath.Join(dir, "missing.jpg")} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			_, err := Reader{}.Read(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func writeImage(t *testing.T, path string, m image.Image, encode func(io.Writer, image.Image) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f, m))
}
