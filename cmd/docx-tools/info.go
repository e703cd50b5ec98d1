package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
	"github.com/pdiddy/office-tools/internal/word"
)

var infoCmd = &cobra.Command{
	Use:   "info <docx>",
	Short: "Show document metadata and structure",
	Long: `info reports the document's core properties (title, author, created,
modified) along with paragraph and table counts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		info, err := word.GetInfo(args[0])
		if err != nil {
			return err
		}
		data, err := cliutil.Render(info, cliutil.ResolveFormat(format))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
		return nil
	},
}

func init() {
	infoCmd.Flags().StringP("format", "f", "", "output format: json or yaml (default: json)")

	rootCmd.AddCommand(infoCmd)
}
