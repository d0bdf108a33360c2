// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout chooses a page format for a scanned image and centers the
// image on that page. All geometry is computed in pixels at the scan DPI and
// converted to inches only for the final placement.
package layout

import (
	"fmt"
	"sort"
)

// Orientation is the page orientation derived from an image's pixel aspect.
type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

// String returns the long name of the orientation.
func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// MarshalYAML writes the long name.
func (o Orientation) MarshalYAML() (any, error) {
	return o.String(), nil
}

// OrientationOf returns Portrait when the image is strictly taller than wide.
// Square images are Landscape.
func OrientationOf(width, height int) Orientation {
	if width < height {
		return Portrait
	}
	return Landscape
}

// Size is a portrait page size in inches.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MaxID is the largest identifier with a standard page size (A10).
const MaxID = 10

// Table maps a size identifier (the n in "An") to its portrait size.
type Table map[int]Size

// DefaultTable holds the formats searched when no table is configured.
func DefaultTable() Table {
	return Table{
		5: {Width: 5.8, Height: 8.3},
		4: {Width: 8.3, Height: 11.7},
	}
}

// IDs returns the table's identifiers from largest to smallest, which is the
// order the best-fit search visits them in.
func (t Table) IDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	return ids
}

// Validate reports whether the table can be searched.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("page format table is empty")
	}
	for id, s := range t {
		if id < 0 || id > MaxID {
			return fmt.Errorf("page format A%d: identifier must be between 0 and %d", id, MaxID)
		}
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("page format A%d: width and height must be positive, got %gx%g", id, s.Width, s.Height)
		}
	}
	return nil
}

// Label returns the page format name for a size identifier, e.g. "A4".
func Label(id int) string {
	return fmt.Sprintf("A%d", id)
}

// Extents is a page size in pixels at a given DPI, already rotated for the
// page orientation.
type Extents struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Selection is the outcome of the best-fit search. Overflow is set when no
// format contains the image; ID and Extents then describe the smallest format.
type Selection struct {
	ID       int
	Extents  Extents
	Overflow bool
}

// Label returns the page format name of the selected format.
func (s Selection) Label() string {
	return Label(s.ID)
}

// Select finds the page format for an image. Identifiers are visited from
// largest to smallest, so the first format whose extents at dpi strictly
// exceed the image in both axes is the smallest page that holds it. When no
// format fits, the result is the last one visited, marked Overflow.
func Select(t Table, width, height int, dpi float64, o Orientation) (Selection, error) {
	if err := t.Validate(); err != nil {
		return Selection{}, err
	}

	w0, h0 := float64(width), float64(height)
	var last Selection
	for _, id := range t.IDs() {
		size := t[id]
		ext := Extents{Width: size.Width * dpi, Height: size.Height * dpi}
		if o == Landscape {
			ext.Width, ext.Height = ext.Height, ext.Width
		}
		last = Selection{ID: id, Extents: ext}
		if w0 < ext.Width && h0 < ext.Height {
			return last, nil
		}
	}

	last.Overflow = true
	return last, nil
}

// Placement describes one page: its format and where the image sits on it.
// Pixel fields are at the scan DPI; X, Y and Width are in inches.
type Placement struct {
	Orientation Orientation `yaml:"orientation"`
	Format      string      `yaml:"format"`
	Page        Extents     `yaml:"page_px"`
	ImageWidth  int         `yaml:"image_width_px"`
	ImageHeight int         `yaml:"image_height_px"`
	// EffectiveWidth is the image width used for placement. It equals the page
	// width when the image overflowed and the original width otherwise.
	EffectiveWidth float64 `yaml:"effective_width_px"`
	X              float64 `yaml:"x_in"`
	Y              float64 `yaml:"y_in"`
	Width          float64 `yaml:"width_in"`
	Overflow       bool    `yaml:"overflow"`
}

// Place selects the page for a width x height pixel image and centers the
// image on it. On overflow the image is clamped to the page width only, so any
// excess height runs off the page.
func Place(t Table, width, height int, dpi float64) (Placement, error) {
	if dpi <= 0 {
		return Placement{}, fmt.Errorf("dpi must be positive, got %g", dpi)
	}

	o := OrientationOf(width, height)
	sel, err := Select(t, width, height, dpi, o)
	if err != nil {
		return Placement{}, err
	}

	w0 := float64(width)
	if sel.Overflow {
		w0 = sel.Extents.Width
	}

	return Placement{
		Orientation:    o,
		Format:         sel.Label(),
		Page:           sel.Extents,
		ImageWidth:     width,
		ImageHeight:    height,
		EffectiveWidth: w0,
		X:              (sel.Extents.Width - w0) / 2 / dpi,
		Y:              (sel.Extents.Height - float64(height)) / 2 / dpi,
		Width:          w0 / dpi,
		Overflow:       sel.Overflow,
	}, nil
}
