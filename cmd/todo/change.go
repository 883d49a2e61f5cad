package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/todo/pkg/core"
)

var changeCmd = &cobra.Command{
	Use:   "c <value> [index]",
	Short: "Change the value at a given index, or the last one",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return core.ErrMissingValue
		}
		index, err := parseOptionalIndex(args, 1)
		if err != nil {
			return err
		}

		notes, err := editor.Change(cmd.Context(), notebook, args[0], index)
		if err != nil {
			return err
		}
		printNotes(cmd.OutOrStdout(), notes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changeCmd)
}
