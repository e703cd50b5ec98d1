package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
	"github.com/pdiddy/office-tools/internal/word"
)

var toTextCmd = &cobra.Command{
	Use:   "to-text <docx>",
	Short: "Extract text from a Word document",
	Long: `to-text prints every paragraph of the document in order, followed by the
content of each table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		text, err := word.ExtractText(args[0])
		if err != nil {
			return err
		}
		return cliutil.WriteOutput(out, text, cmd.OutOrStdout())
	},
}

func init() {
	toTextCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(toTextCmd)
}
