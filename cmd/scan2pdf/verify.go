// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scan2pdf/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file.pdf>",
	Short: "Validate a PDF and optionally check its page count",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().Int("pages", -1, "expected page count (negative skips the check)")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	pages, _ := cmd.Flags().GetInt("pages")
	n, err := verify.File(args[0], pages)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid, %d page(s)\n", args[0], n)
	return nil
}
