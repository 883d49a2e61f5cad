package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/todo/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "w",
	Short: "Print the note again whenever it changes",
	Long: `Print the note, then print it again every time the file changes on disk,
for example when another terminal runs "todo i". Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := editor.Watch(ctx, notebook)
		if err != nil {
			return err
		}
		source := lifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		notes, err := editor.Notes(ctx, notebook)
		if err != nil {
			return err
		}
		printNotes(out, notes)

		for event := range source.Events() {
			logger.Debug("note changed", "event", event.String())
			notes, err := editor.Notes(ctx, notebook)
			if err != nil {
				logger.Warn("failed to reload note", "error", err)
				continue
			}
			printNotes(out, notes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
