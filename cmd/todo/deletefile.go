package main

import (
	"github.com/spf13/cobra"
)

var deleteFileCmd = &cobra.Command{
	Use:   "D",
	Short: "Delete the selected note file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.DeleteFile(cmd.Context(), notebook)
	},
}

func init() {
	rootCmd.AddCommand(deleteFileCmd)
}
