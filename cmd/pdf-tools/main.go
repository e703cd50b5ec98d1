// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-tools CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdf-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-tools",
	Short: "PDF utilities",
	Long: `pdf-tools works with PDF files: extract text page by page, inspect
document metadata, reconstruct tables from positioned text, and search
page content.

Each operation is a subcommand: extract, info, tables, and search.`,
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
