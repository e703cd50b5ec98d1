package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
	"github.com/pdiddy/office-tools/internal/slides"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pptx>",
	Short: "Extract text from a presentation",
	Long: `extract prints the text of each slide under a "--- Slide N ---" header.
Speaker notes, when present, are appended as "[Notes: ...]".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		text, err := slides.ExtractText(args[0])
		if err != nil {
			return err
		}
		return cliutil.WriteOutput(out, text, cmd.OutOrStdout())
	},
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(extractCmd)
}
