// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagesize reads the pixel dimensions of a scanned image without
// decoding its pixels. The file type is detected from magic bytes rather
// than the file name, because the document builder needs the real type to
// embed the image.
package imagesize

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// supported maps the MIME types that can be read and embedded to a short
// type name.
var supported = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/tiff": "tiff",
	"image/bmp":  "bmp",
	"image/webp": "webp",
}

// pngHeaderLen covers the signature and the IHDR chunk up to the interlace
// method byte.
const pngHeaderLen = 29

// Info describes one image file.
type Info struct {
	Path   string
	Width  int
	Height int
	// Type is the detected image type: jpg, png, gif, tiff, bmp, or webp.
	Type string
	// Native is set when the PDF writer can embed the file as-is. Other
	// images are decoded and re-encoded as 8-bit PNG first.
	Native bool
}

// Reader reads image headers from the local filesystem.
type Reader struct{}

// Read returns the dimensions and type of the image at path. It fails when
// the file cannot be opened or is not a supported image.
func (Reader) Read(path string) (Info, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("detecting image type of %s: %w", path, err)
	}
	typ := ""
	for m, t := range supported {
		if mtype.Is(m) {
			typ = t
			break
		}
	}
	if typ == "" {
		return Info{}, fmt.Errorf("%s is not a supported image (detected %s)", path, mtype.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	native := typ == "jpg" || typ == "gif"
	if typ == "png" {
		native, err = pngNative(f)
		if err != nil {
			return Info{}, fmt.Errorf("reading image header of %s: %w", path, err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return Info{}, fmt.Errorf("rewinding %s: %w", path, err)
		}
	}

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("reading image header of %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, fmt.Errorf("image %s has no pixels (%dx%d)", path, cfg.Width, cfg.Height)
	}

	return Info{Path: path, Width: cfg.Width, Height: cfg.Height, Type: typ, Native: native}, nil
}

// pngNative reports whether a PNG has at most 8 bits per sample and no
// interlacing, which is what the PDF writer parses directly.
func pngNative(r io.Reader) (bool, error) {
	var hdr [pngHeaderLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return false, err
	}
	if string(hdr[12:16]) != "IHDR" {
		return false, fmt.Errorf("missing IHDR chunk")
	}
	bitDepth, interlace := hdr[24], hdr[28]
	return bitDepth <= 8 && interlace == 0, nil
}
