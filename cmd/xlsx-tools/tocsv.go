package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/sheet"
)

var toCSVSheet string

var toCSVCmd = &cobra.Command{
	Use:   "to-csv <xlsx> <out.csv>",
	Short: "Export a sheet to CSV",
	Long: `to-csv writes every row of a sheet to a CSV file. Without --sheet the
workbook's active sheet is exported.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sheet.ToCSV(args[0], args[1], toCSVSheet); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", args[1])
		return nil
	},
}

func init() {
	toCSVCmd.Flags().StringVar(&toCSVSheet, "sheet", "", "sheet to export (default: active sheet)")

	rootCmd.AddCommand(toCSVCmd)
}
