// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pptx-tools CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pptx-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "pptx-tools",
	Short: "PowerPoint presentation utilities",
	Long: `pptx-tools works with PowerPoint .pptx files: extract slide text, inspect
metadata, build a deck from a markdown outline, and create new decks.

Each operation is a subcommand: extract, info, from-outline, and create.`,
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
