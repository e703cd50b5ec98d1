package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/pdfdoc"
)

var searchCmd = &cobra.Command{
	Use:   "search <pdf> <query>",
	Short: "Search PDF pages for text",
	Long: `search scans every page for the query, case-insensitively, and lists the
pages that contain it with the text surrounding the first occurrence.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := pdfdoc.Search(args[0], args[1])
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches found")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Found %d page(s)\n", len(matches))
		for _, m := range matches {
			fmt.Fprintf(cmd.OutOrStdout(), "Page %d: %s\n", m.Page, m.Context)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
