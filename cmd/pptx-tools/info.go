package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/cliutil"
	"github.com/pdiddy/office-tools/internal/slides"
)

var infoCmd = &cobra.Command{
	Use:   "info <pptx>",
	Short: "Show presentation metadata and slide overview",
	Long: `info reports the presentation's core properties (title, author, created,
modified), the slide count, and a one-line overview of each slide.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		info, err := slides.GetInfo(args[0])
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
