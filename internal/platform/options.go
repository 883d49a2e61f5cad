package platform

import (
	"log/slog"

	"github.com/aretw0/todo/pkg/core"
)

// options holds the internal configuration for the notes editor.
type options struct {
	store        core.Store
	launcher     core.Launcher
	logger       *slog.Logger
	dir          string
	file         string
	defaultName  string
	editor       string
	strictDelete bool
	versioning   bool
}

// Option defines a functional option for configuring the editor.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithDir sets the directory holding named notes.
// Defaults to DataDir().
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithFile fixes the file used for the default note (e.g. ~/.todo).
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithDefaultNotebook sets the name of the default note inside the directory.
func WithDefaultNotebook(name string) Option {
	return func(o *options) {
		o.defaultName = name
	}
}

// WithEditorProgram sets the program used by Edit when VISUAL and EDITOR are unset.
func WithEditorProgram(program string) Option {
	return func(o *options) {
		o.editor = program
	}
}

// WithStrictDelete makes a multi-delete abort on the first invalid index.
func WithStrictDelete(strict bool) Option {
	return func(o *options) {
		o.strictDelete = strict
	}
}

// WithVersioning enables or disables git history of the notes directory.
// By default, versioning is disabled.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = enabled
	}
}

// WithLogger sets the logger for the store and the editor.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store (e.g. a mock).
// If provided, the filesystem store will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithLauncher replaces the default editor launcher.
func WithLauncher(l core.Launcher) Option {
	return func(o *options) {
		o.launcher = l
	}
}
