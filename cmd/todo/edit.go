package main

import (
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "e",
	Short: "Edit the note in a text editor",
	Long: `Edit the note in a text editor.

The program is taken from VISUAL, then EDITOR, then the editor key of the
config file, and defaults to nano.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.Edit(cmd.Context(), notebook)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
