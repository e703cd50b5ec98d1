package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/slides"
)

var createTitle string

var createCmd = &cobra.Command{
	Use:   "create <pptx>",
	Short: "Create a new presentation",
	Long: `create writes an empty presentation, or one with a single title slide when
--title is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var deck []slides.Slide
		if createTitle != "" {
			deck = append(deck, slides.Slide{Title: createTitle, IsTitle: true})
		}
		if err := slides.WriteDeck(args[0], deck); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[0])
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "title for the opening slide")

	rootCmd.AddCommand(createCmd)
}
