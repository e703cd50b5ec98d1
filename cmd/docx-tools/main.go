// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docx-tools CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docx-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "docx-tools",
	Short: "Word document utilities",
	Long: `docx-tools works with Microsoft Word .docx files: extract their text,
inspect metadata, build documents from markdown, and create blank documents.

Each operation is a subcommand: to-text, info, from-markdown, and create.`,
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
