package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "l [pattern]",
	Short: "List the available notes",
	Long: `List the available notes, numbered.

An optional glob pattern filters the names, e.g. "work*" or "{home,work}".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}

		names, err := editor.ListFiles(cmd.Context(), pattern)
		if err != nil {
			return err
		}
		printNotes(cmd.OutOrStdout(), names)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
