package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/word"
)

var fromMarkdownCmd = &cobra.Command{
	Use:   "from-markdown <markdown> <docx>",
	Short: "Create a Word document from a markdown file",
	Long: `from-markdown converts a markdown file into a Word document: headings map
to Heading styles, bullet and numbered list items to the matching list
styles, and everything else to plain paragraphs.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := word.FromMarkdown(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fromMarkdownCmd)
}
