package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/sheet"
)

var toJSONSheet string

var toJSONCmd = &cobra.Command{
	Use:   "to-json <xlsx> <out.json>",
	Short: "Export a sheet to JSON",
	Long: `to-json writes a sheet as an array of objects keyed by the header row.
Empty header cells get generated col_<i> keys, and rows shorter than the
header are padded with empty strings. Without --sheet the workbook's
active sheet is exported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sheet.ToJSON(args[0], args[1], toJSONSheet); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", args[1])
		return nil
	},
}

func init() {
	toJSONCmd.Flags().StringVar(&toJSONSheet, "sheet", "", "sheet to export (default: active sheet)")

	rootCmd.AddCommand(toJSONCmd)
}
