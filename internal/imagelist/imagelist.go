// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imagelist finds the scanned images to bind into a document.
package imagelist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns the absolute paths of the files directly inside dir whose
// names match *.ext, sorted ascending. The directory is resolved to its
// canonical absolute path first. No matches is not an error.
func List(dir, ext string) ([]string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return nil, fmt.Errorf("image extension must not be empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("reading image directory %s: %w", abs, err)
	}

	pattern := "*." + ext
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		if ok {
			paths = append(paths, filepath.Join(abs, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
