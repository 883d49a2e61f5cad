package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "d [index...]",
	Short: "Delete the values at the given indices, or the last one",
	Long: `Delete the values at the given indices, or the last one.

Indices refer to the list as it was before the command, so their order does
not matter. Indices outside the list are reported and skipped unless --strict
is set (or strict_delete in the config file), in which case nothing is deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		indices := make([]int, 0, len(args))
		for _, arg := range args {
			i, err := parseIndex(arg)
			if err != nil {
				return err
			}
			indices = append(indices, i)
		}

		res, err := editor.Delete(cmd.Context(), notebook, indices)
		if err != nil {
			return err
		}
		for _, i := range res.Skipped {
			printWarning(cmd.ErrOrStderr(), "index %d is out of range, skipped", i)
		}
		printNotes(cmd.OutOrStdout(), res.Notes)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&strictDelete, "strict", false, "Abort without deleting anything if an index is out of range")
	rootCmd.AddCommand(deleteCmd)
}
