package todo

import (
	"context"
	"log/slog"

	"github.com/aretw0/todo/internal/platform"
	"github.com/aretw0/todo/pkg/core"
)

// Version exposes the version of the tool.
// See version.go for the implementation using go:embed.

// --- Types ---

// Editor applies note-list edits on top of a store.
type Editor = core.Editor

// NoteList is an ordered list of note lines.
type NoteList = core.NoteList

// DeleteResult describes the outcome of a multi-line delete.
type DeleteResult = core.DeleteResult

// --- Configuration ---

// Option defines a functional option for configuring the editor.
type Option = platform.Option

// FileConfig is the optional YAML config file.
type FileConfig = platform.FileConfig

// WithDir sets the directory holding named notes.
func WithDir(dir string) Option {
	return platform.WithDir(dir)
}

// WithFile fixes the file used for the default note.
func WithFile(path string) Option {
	return platform.WithFile(path)
}

// WithDefaultNotebook sets the name of the default note.
func WithDefaultNotebook(name string) Option {
	return platform.WithDefaultNotebook(name)
}

// WithEditorProgram sets the fallback program used by Edit.
func WithEditorProgram(program string) Option {
	return platform.WithEditorProgram(program)
}

// WithStrictDelete makes a multi-delete abort on the first invalid index.
func WithStrictDelete(strict bool) Option {
	return platform.WithStrictDelete(strict)
}

// WithVersioning enables or disables git history of the notes directory.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithLogger sets the logger for the store and the editor.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithLauncher replaces the default editor launcher.
func WithLauncher(l core.Launcher) Option {
	return platform.WithLauncher(l)
}

// --- Factory ---

// New creates a new Editor.
func New(ctx context.Context, opts ...Option) (*Editor, error) {
	return platform.New(ctx, opts...)
}

// LoadConfig reads the config file at path. A missing file is an empty config.
func LoadConfig(path string) (*FileConfig, error) {
	return platform.LoadConfig(path)
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	return platform.ConfigPath()
}
