// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verify checks a written PDF by reading it back with pdfcpu.
package verify

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func init() {
	// Use pdfcpu's built-in defaults instead of a per-user config directory.
	api.DisableConfigDir()
}

// File validates the PDF at path and returns its page count. When wantPages
// is not negative, the count must match it.
func File(path string, wantPages int) (int, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return 0, fmt.Errorf("validating %s: %w", path, err)
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	if wantPages >= 0 && n != wantPages {
		return n, fmt.Errorf("%s has %d page(s), want %d", path, n, wantPages)
	}
	return n, nil
}
