// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document builds the output PDF: one page per scanned image, with
// sizes given in inches.
package document

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/scan2pdf/internal/imagesize"
)

const mmPerInch = 25.4

// paperSizes holds portrait page sizes in millimetres, keyed by upper-case
// label. The A series follows ISO 216.
var paperSizes = map[string][2]float64{
	"A0":     {841, 1189},
	"A1":     {594, 841},
	"A2":     {420, 594},
	"A3":     {297, 420},
	"A4":     {210, 297},
	"A5":     {148, 210},
	"A6":     {105, 148},
	"A7":     {74, 105},
	"A8":     {52, 74},
	"A9":     {37, 52},
	"A10":    {26, 37},
	"LETTER": {215.9, 279.4},
	"LEGAL":  {215.9, 355.6},
}

// PageSize returns the portrait size in inches of a named paper format such
// as "A4". Labels are case-insensitive.
func PageSize(label string) (width, height float64, err error) {
	mm, ok := paperSizes[strings.ToUpper(label)]
	if !ok {
		return 0, 0, fmt.Errorf("unknown page format %q", label)
	}
	return mm[0] / mmPerInch, mm[1] / mmPerInch, nil
}

// PDF is an in-memory PDF document measured in inches. Pages are appended in
// order and the document is written once with Save.
type PDF struct {
	pdf   *gofpdf.Fpdf
	pages int
}

// New creates an empty document. No text is drawn; the font only sets the
// document defaults.
func New() *PDF {
	pdf := gofpdf.New("P", "in", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &PDF{pdf: pdf}
}

// AddPage appends a page of the named format. orientation is "P" or "L";
// landscape pages use the format's portrait size rotated.
func (d *PDF) AddPage(orientation, format string) error {
	w, h, err := PageSize(format)
	if err != nil {
		return err
	}
	d.pdf.AddPageFormat(orientation, gofpdf.SizeType{Wd: w, Ht: h})
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("adding %s page: %w", format, err)
	}
	d.pages++
	return nil
}

// Image draws an image on the current page with its top-left corner at
// (x, y) and the given width. Height follows the image's aspect ratio.
// Images the writer cannot parse directly are re-encoded as 8-bit PNG.
func (d *PDF) Image(img imagesize.Info, x, y, width float64) error {
	if d.pages == 0 {
		return fmt.Errorf("placing %s: document has no pages", img.Path)
	}

	opts := gofpdf.ImageOptions{ImageType: img.Type}
	if !img.Native {
		data, err := transcode(img.Path)
		if err != nil {
			return fmt.Errorf("placing %s: %w", img.Path, err)
		}
		opts.ImageType = "png"
		d.pdf.RegisterImageOptionsReader(img.Path, opts, bytes.NewReader(data))
	}
	d.pdf.ImageOptions(img.Path, x, y, width, 0, false, opts, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("placing %s: %w", img.Path, err)
	}
	return nil
}

// transcode decodes the image at path and encodes it as a non-interlaced PNG
// with at most 8 bits per sample. Pixels are not otherwise changed.
func transcode(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, eightBit(m)); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// eightBit converts 16-bit images to their 8-bit equivalent, since the PNG
// encoder keeps the source depth.
func eightBit(m image.Image) image.Image {
	b := m.Bounds()
	switch m.ColorModel() {
	case color.Gray16Model:
		g := image.NewGray(b)
		draw.Draw(g, b, m, b.Min, draw.Src)
		return g
	case color.RGBA64Model, color.NRGBA64Model:
		n := image.NewNRGBA(b)
		draw.Draw(n, b, m, b.Min, draw.Src)
		return n
	}
	return m
}

// PageCount returns the number of pages added so far.
func (d *PDF) PageCount() int {
	return d.pages
}

// Save writes the document to path and closes it.
func (d *PDF) Save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
