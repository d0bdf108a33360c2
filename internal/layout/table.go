// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layout

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// tableFile is the on-disk shape of a page format table:
//
//	formats:
//	  5: {width: 5.8, height: 8.3}
//	  4: {width: 8.3, height: 11.7}
type tableFile struct {
	Formats Table `yaml:"formats"`
}

// ParseTable decodes and validates a YAML page format table.
func ParseTable(data []byte) (Table, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing page format table: %w", err)
	}
	if err := tf.Formats.Validate(); err != nil {
		return nil, err
	}
	return tf.Formats, nil
}

// LoadTable reads a page format table from path. An empty path yields the
// default table.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page format table %s: %w", path, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
