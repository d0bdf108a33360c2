// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose turns a directory of scanned images into a paginated
// document, one page per image, each image centered on the smallest page
// format that holds it.
package compose

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scan2pdf/internal/imagelist"
	"github.com/pdiddy/scan2pdf/internal/imagesize"
	"github.com/pdiddy/scan2pdf/internal/layout"
	"github.com/pdiddy/scan2pdf/pkg/types"
)

// ErrNoImages is returned when the input directory has no matching images.
var ErrNoImages = errors.New("No images were found")

// DimensionReader reads an image's pixel size and type.
type DimensionReader interface {
	Read(path string) (imagesize.Info, error)
}

// Document receives pages in order. document.PDF implements it.
type Document interface {
	AddPage(orientation, format string) error
	Image(img imagesize.Info, x, y, width float64) error
	Save(path string) error
}

// Composer lays out one image per page.
type Composer struct {
	Table  layout.Table
	DPI    float64
	Reader DimensionReader
	Log    zerolog.Logger
}

// Page is the layout chosen for one image.
type Page struct {
	Path             string `yaml:"path"`
	layout.Placement `yaml:",inline"`
}

// Plan reads the image at path and computes its page without touching a
// document. Oversized images are logged as a warning.
func (c *Composer) Plan(path string) (Page, imagesize.Info, error) {
	info, err := c.Reader.Read(path)
	if err != nil {
		return Page{}, imagesize.Info{}, fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := layout.Place(c.Table, info.Width, info.Height, c.DPI)
	if err != nil {
		return Page{}, imagesize.Info{}, fmt.Errorf("laying out %s: %w", path, err)
	}
	if p.Overflow {
		c.Log.Warn().
			Str("image", path).
			Str("size", fmt.Sprintf("%dx%d", info.Width, info.Height)).
			Str("page", fmt.Sprintf("%s %.0fx%.0f", p.Format, p.Page.Width, p.Page.Height)).
			Msg("image size is too big; clamping to page width")
	}
	return Page{Path: path, Placement: p}, info, nil
}

// AddImage appends one page holding the image at path to doc.
func (c *Composer) AddImage(doc Document, path string) (Page, error) {
	page, info, err := c.Plan(path)
	if err != nil {
		return Page{}, err
	}
	if err := doc.AddPage(string(page.Orientation), page.Format); err != nil {
		return Page{}, err
	}
	if err := doc.Image(info, page.X, page.Y, page.Width); err != nil {
		return Page{}, err
	}
	return page, nil
}

// Result summarises a run.
type Result struct {
	Pages      []Page
	Overflowed int
}

// PageCount returns the number of pages produced.
func (r Result) PageCount() int {
	return len(r.Pages)
}

func (r *Result) add(p Page) {
	r.Pages = append(r.Pages, p)
	if p.Overflow {
		r.Overflowed++
	}
}

// NewComposer builds a Composer from the run configuration.
func NewComposer(cfg types.Config, reader DimensionReader, log zerolog.Logger) (*Composer, error) {
	if cfg.DPI <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %d", cfg.DPI)
	}
	table, err := layout.LoadTable(cfg.Formats)
	if err != nil {
		return nil, err
	}
	return &Composer{
		Table:  table,
		DPI:    float64(cfg.DPI),
		Reader: reader,
		Log:    log,
	}, nil
}

// Images lists the input images, returning ErrNoImages when there are none.
func Images(cfg types.Config) ([]string, error) {
	images, err := imagelist.List(cfg.InputDir, cfg.Format)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

// Run binds every image in cfg.InputDir into a document created by newDoc and
// saves it to cfg.Output. The document is only created once at least one
// image was found, and nothing is written unless every page was added.
func Run(cfg types.Config, c *Composer, newDoc func() Document) (Result, error) {
	images, err := Images(cfg)
	if err != nil {
		return Result{}, err
	}

	doc := newDoc()
	var result Result
	for _, img := range images {
		c.Log.Info().Str("image", img).Msg("adding page")
		page, err := c.AddImage(doc, img)
		if err != nil {
			return result, err
		}
		result.add(page)
	}

	c.Log.Info().Str("output", cfg.Output).Int("pages", result.PageCount()).Msg("writing document")
	if err := doc.Save(cfg.Output); err != nil {
		return result, err
	}
	return result, nil
}

// PlanAll computes the page for every input image without building a
// document.
func PlanAll(cfg types.Config, c *Composer) (Result, error) {
	images, err := Images(cfg)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, img := range images {
		page, _, err := c.Plan(img)
		if err != nil {
			return result, err
		}
		result.add(page)
	}
	return result, nil
}
