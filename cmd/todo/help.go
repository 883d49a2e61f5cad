package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const helpMessage = `todo is a tool for quick reminders and taking notes.

usage:
    todo [-n note] [command] [args...]

if you don't specify a note with -n, the default one is used

commands:
    i <value> [index] Insert a value at a given index.
                      If an index is not provided, appends the value at the end of the list.
    c <value> [index] Change a value at a given index.
                      If an index is not provided, changes the last value.
    d [index...]      Delete values at given indices.
                      If no indices are provided, deletes the last value from the list.
    h                 Show this help message.
    l [pattern]       List all available notes.
    D                 Delete the specified note.
    e                 Edit a note using a text editor.
                      Will try to use the VISUAL and EDITOR environment variables.
    w                 Print the note again whenever it changes.
    version           Print the version.`

var helpCmd = &cobra.Command{
	Use:         "h",
	Short:       "Show the help message",
	Args:        cobra.ArbitraryArgs,
	Annotations: map[string]string{skipEditorAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.ErrOrStderr(), helpMessage)
	},
}

func init() {
	rootCmd.AddCommand(helpCmd)
}
