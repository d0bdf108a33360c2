// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scan2pdf/internal/compose"
	"github.com/pdiddy/scan2pdf/internal/imagesize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the page chosen for each image without writing a PDF",
	Long: `Plan reads the size of every input image and prints, as YAML, the page
format, orientation, and placement each one would get. No document is
written.`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	c, err := compose.NewComposer(cfg, imagesize.Reader{}, log)
	if err != nil {
		return err
	}
	result, err := compose.PlanAll(cfg, c)
	if err != nil {
		return err
	}
	return writePlan(os.Stdout, result)
}

// writePlan encodes the planned pages as a YAML document.
func writePlan(w io.Writer, result compose.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{
		"pages":      result.Pages,
		"overflowed": result.Overflowed,
	}); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return enc.Close()
}
