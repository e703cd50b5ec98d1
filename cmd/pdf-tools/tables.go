package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/pdfdoc"
)

var tablesCmd = &cobra.Command{
	Use:   "tables <pdf>",
	Short: "Extract tables from a PDF",
	Long: `tables reconstructs row and column structure from the positions of text
fragments on each page. With --output the result is written as CSV with a
"=== Page N ===" marker before each table; otherwise rows are printed
tab-joined on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		pages, _ := cmd.Flags().GetString("pages")

		tables, err := pdfdoc.ExtractTables(args[0], pages)
		if err != nil {
			return err
		}
		if len(tables) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tables found")
			return nil
		}

		records := pdfdoc.RenderCSVRows(tables)
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()

			w := csv.NewWriter(f)
			if err := w.WriteAll(records); err != nil {
				return fmt.Errorf("writing csv: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Written to %s\n", out)
			return nil
		}

		for _, rec := range records {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rec, "\t"))
		}
		return nil
	},
}

func init() {
	tablesCmd.Flags().StringP("output", "o", "", "CSV output file (default: stdout)")
	tablesCmd.Flags().String("pages", "", `pages to scan, e.g. "2-5" or "1,3" (default: all)`)

	rootCmd.AddCommand(tablesCmd)
}
