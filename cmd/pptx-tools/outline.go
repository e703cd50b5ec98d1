package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/slides"
)

var fromOutlineCmd = &cobra.Command{
	Use:   "from-outline <outline.md> <pptx>",
	Short: "Build a presentation from a markdown outline",
	Long: `from-outline turns a markdown outline into a slide deck. A leading "# "
heading becomes the title slide, each "## " heading starts a content slide,
and "- " or "* " items become bullets whose level follows their indentation
(two spaces per level). Other non-blank lines under a slide become
top-level bullets.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading outline: %w", err)
		}

		deck := slides.ParseOutlineText(string(content))
		if err := slides.WriteDeck(args[1], deck); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s with %d slides\n", args[1], len(deck))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fromOutlineCmd)
}
