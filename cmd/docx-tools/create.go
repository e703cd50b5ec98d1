package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/office-tools/internal/word"
)

var createTitle string

var createCmd = &cobra.Command{
	Use:   "create <docx>",
	Short: "Create a new Word document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := word.CreateBlank(args[0], createTitle); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[0])
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "title paragraph for the new document")
	rootCmd.AddCommand(createCmd)
}
