package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
	"github.com/pdiddy/office-tools/internal/pdfdoc"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Extract text from a PDF",
	Long: `extract prints the text of each page under a "--- Page N ---" header.
Pages with no extractable text are omitted.

The --pages flag narrows extraction to a subset, e.g. "3", "2-5", or
"1-3,7".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		pages, _ := cmd.Flags().GetString("pages")

		text, err := pdfdoc.ExtractText(args[0], pages)
		if err != nil {
			return err
		}
		return cliutil.WriteOutput(out, text, cmd.OutOrStdout())
	},
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().String("pages", "", `pages to extract, e.g. "2-5" or "1,3" (default: all)`)

	rootCmd.AddCommand(extractCmd)
}
