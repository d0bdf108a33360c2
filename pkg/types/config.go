// Package types holds the configuration shared by the scan2pdf commands.
package types

const (
	DefaultInputDir = "."
	DefaultOutput   = "document.pdf"
	DefaultFormat   = "jpg"
	DefaultDPI      = 300
)

// Config holds the settings for one conversion run. Values come from flags,
// the scan2pdf.yaml config file, or SCAN2PDF_* environment variables.
type Config struct {
	// InputDir is the directory scanned for images (non-recursive).
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// Output is the path of the PDF to write.
	Output string `json:"output" yaml:"output"`

	// Format is the image file extension to match, without the dot.
	Format string `json:"format" yaml:"format"`

	// DPI is the assumed scan resolution used to turn pixels into inches.
	DPI int `json:"dpi" yaml:"dpi"`

	// Formats is an optional YAML file holding the page format table.
	// Empty selects the built-in A4/A5 table.
	Formats string `json:"formats,omitempty" yaml:"formats,omitempty"`

	// Verify re-opens the written PDF and checks its page count.
	Verify bool `json:"verify" yaml:"verify"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		InputDir: DefaultInputDir,
		Output:   DefaultOutput,
		Format:   DefaultFormat,
		DPI:      DefaultDPI,
	}
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// File, when set, also receives JSON logs rotated by size.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// MaxSizeMB is the size at which File is rotated (default 10).
	MaxSizeMB int `json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept (default 3).
	MaxBackups int `json:"max_backups" yaml:"max_backups"`
}
