// Package process launches the user's interactive text editor.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/aretw0/todo/pkg/core"
)

// DefaultEditor is used when neither VISUAL, EDITOR nor a configured program is set.
const DefaultEditor = "nano"

// Launcher implements core.Launcher with os/exec.
type Launcher struct {
	// Fallback is the program used when VISUAL and EDITOR are unset.
	Fallback string
	Getenv   func(string) string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
}

// NewLauncher creates a launcher attached to the process stdio.
func NewLauncher(fallback string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Launcher{
		Fallback: fallback,
		Getenv:   os.Getenv,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   logger,
	}
}

// Program returns the editor command line, split into fields:
// VISUAL, then EDITOR, then Fallback, then DefaultEditor.
func (l *Launcher) Program() []string {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, candidate := range []string{getenv("VISUAL"), getenv("EDITOR"), l.Fallback} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	return []string{DefaultEditor}
}

// Launch runs the editor on path and waits for it to exit. The parent
// directory is created first so the editor can save. A failure to start
// the program is ErrEditorLaunchFailed; a nonzero exit from the editor itself
// is only logged.
func (l *Launcher) Launch(ctx context.Context, path string) error {
	program := l.Program()
	args := append(program[1:], path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create directories: %w", core.ErrIO, err)
	}

	cmd := exec.CommandContext(ctx, program[0], args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	l.Logger.Debug("starting editor", "program", program[0], "args", args)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrEditorLaunchFailed, program[0], err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			l.Logger.Warn("editor exited with error", "program", program[0], "code", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("%w: %s: %w", core.ErrEditorLaunchFailed, program[0], err)
	}
	return nil
}

var _ core.Launcher = (*Launcher)(nil)
