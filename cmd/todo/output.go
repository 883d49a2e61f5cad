package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/todo/pkg/core"
)

// NoNotesMessage is printed in place of an empty list.
const NoNotesMessage = "you don't have any notes"

// usageError reports malformed command line arguments.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// formatNumbered prefixes each line with its 1-based position, right-justified
// to the width of the largest position.
func formatNumbered(lines []string) string {
	if len(lines) == 0 {
		return NoNotesMessage + "\n"
	}
	width := len(strconv.Itoa(len(lines)))
	var out []byte
	for i, line := range lines {
		out = fmt.Appendf(out, "%*d: %s\n", width, i+1, line)
	}
	return string(out)
}

// printNotes writes the numbered list to w.
func printNotes(w io.Writer, notes []string) {
	fmt.Fprint(w, formatNumbered(notes))
}

// printError writes err to w as a single line.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err)
}

// printWarning writes a non-fatal problem to w.
func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &uerr),
		errors.Is(err, core.ErrMissingValue),
		errors.Is(err, core.ErrMultilineValue),
		errors.Is(err, core.ErrInvalidIndex),
		errors.Is(err, core.ErrInvalidName):
		return ExitUsage
	case errors.Is(err, core.ErrEmptyList),
		errors.Is(err, core.ErrNotFound):
		return ExitDataError
	case errors.Is(err, core.ErrIO),
		errors.Is(err, core.ErrEditorLaunchFailed):
		return ExitIOError
	default:
		return ExitError
	}
}

// parseIndex converts a 1-based position argument.
func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, newUsageError("'%s' is not a valid index", arg)
	}
	return i, nil
}

// parseOptionalIndex parses args[pos] when present.
func parseOptionalIndex(args []string, pos int) (*int, error) {
	if len(args) <= pos {
		return nil, nil
	}
	i, err := parseIndex(args[pos])
	if err != nil {
		return nil, err
	}
	return &i, nil
}
