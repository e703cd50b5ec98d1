package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
	"github.com/pdiddy/office-tools/internal/sheet"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <xlsx>",
	Short: "Summarize workbook structure",
	Long: `summarize reports the workbook's sheet count and the row and column
dimensions of each sheet. With --format json or yaml the summary is
printed as structured data instead of plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		sum, err := sheet.Summarize(args[0])
		if err != nil {
			return err
		}
		if format == "" {
			fmt.Fprintln(cmd.OutOrStdout(), sum.Render())
			return nil
		}
		data, err := cliutil.Render(sum, cliutil.ResolveFormat(format))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringP("format", "f", "", "output format: json or yaml (default: plain text)")

	rootCmd.AddCommand(summarizeCmd)
}
