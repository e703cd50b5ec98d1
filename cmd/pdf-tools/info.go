package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/pdfdoc"
)

var infoCmd = &cobra.Command{
	Use:   "info <pdf>",
	Short: "Show PDF metadata",
	Long: `info reports the page count, whether the file passes validation, and the
entries of the document Info dictionary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := pdfdoc.GetInfo(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
