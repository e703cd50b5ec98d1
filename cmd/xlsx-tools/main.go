// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the xlsx-tools CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the xlsx-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "xlsx-tools",
	Short: "Excel workbook utilities",
	Long: `xlsx-tools works with Excel .xlsx workbooks: list sheets, export sheet
data to CSV or JSON, and summarize workbook structure.

Each operation is a subcommand: sheets, to-csv, to-json, and summarize.`,
	Version: version,
}

func init() {
	cobra.OnInitialize(func() { cliutil.InitConfig(rootCmd) })

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./office-tools.yaml or ~/.config/office-tools/office-tools.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
