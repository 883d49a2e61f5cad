package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/todo"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number of todo",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipEditorAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todo version %s\n", strings.TrimSpace(todo.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
