// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scan2pdf CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scan2pdf/internal/compose"
	"github.com/pdiddy/scan2pdf/internal/document"
	"github.com/pdiddy/scan2pdf/internal/imagesize"
	"github.com/pdiddy/scan2pdf/internal/logger"
	"github.com/pdiddy/scan2pdf/internal/verify"
	"github.com/pdiddy/scan2pdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	log       = zerolog.Nop()
	logCloser io.Closer
)

// rootCmd converts a directory of scans into one PDF.
var rootCmd = &cobra.Command{
	Use:   "scan2pdf",
	Short: "Bind a directory of scanned images into one PDF",
	Long: `scan2pdf collects the images in a directory, sorted by name, and writes
them into a single PDF with one page per image. Each page uses the smallest
standard format (A5, A4, ...) that holds the image at the given DPI, in
portrait or landscape to match the image, with the image centered.

Images larger than every format are placed on the largest page, scaled to
the page width.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./scan2pdf.yaml or ~/.config/scan2pdf/config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "", "also write JSON logs to this file (rotated)")
	pf.String("input_dir", types.DefaultInputDir, "directory with input images")
	pf.String("format", types.DefaultFormat, "input image extension, without the dot")
	pf.Int("dpi", types.DefaultDPI, "DPI of input images")
	pf.String("formats", "", "YAML file with the page format table (default: A4, A5)")

	rootCmd.Flags().String("output", types.DefaultOutput, "output document")
	rootCmd.Flags().Bool("verify", false, "re-open the written PDF and check its page count")

	for key, flag := range map[string]string{
		"log_level": "log-level",
		"log_file":  "log-file",
		"input_dir": "input_dir",
		"format":    "format",
		"dpi":       "dpi",
		"formats":   "formats",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("verify", rootCmd.Flags().Lookup("verify"))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not load .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scan2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scan2pdf"))
		}
	}

	viper.SetEnvPrefix("SCAN2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setup builds the logger once flags and config are known.
func setup(cmd *cobra.Command, args []string) error {
	l, closer, err := logger.New(types.LogConfig{
		Level: viper.GetString("log_level"),
		File:  viper.GetString("log_file"),
	}, os.Stderr)
	if err != nil {
		return err
	}
	log, logCloser = l, closer
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// loadConfig assembles the run configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		InputDir: viper.GetString("input_dir"),
		Output:   viper.GetString("output"),
		Format:   viper.GetString("format"),
		DPI:      viper.GetInt("dpi"),
		Formats:  viper.GetString("formats"),
		Verify:   viper.GetBool("verify"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	c, err := compose.NewComposer(cfg, imagesize.Reader{}, log)
	if err != nil {
		return err
	}

	result, err := compose.Run(cfg, c, func() compose.Document { return document.New() })
	if err != nil {
		return err
	}
	if result.Overflowed > 0 {
		log.Warn().Int("pages", result.Overflowed).Msg("some images were larger than every page format")
	}

	if cfg.Verify {
		if _, err := verify.File(cfg.Output, result.PageCount()); err != nil {
			return err
		}
		log.Info().Str("output", cfg.Output).Int("pages", result.PageCount()).Msg("verified document")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
