// Package main provides the todo CLI entry point.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background()))
}

// run executes the command tree and maps the outcome to an exit code.
func run(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Printed here because the root command has SilenceErrors: true.
		printError(rootCmd.ErrOrStderr(), err)
		return exitCode(err)
	}
	return ExitSuccess
}
