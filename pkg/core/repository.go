package core

import "context"

// Store defines the contract for resolving and persisting note files.
// Names are sanitized note names; the empty name selects the default note.
type Store interface {
	// Path resolves the file that holds the named note.
	Path(name string) (string, error)

	// Load reads the note list. A missing file yields an empty list.
	Load(ctx context.Context, name string) (NoteList, error)

	// Save overwrites the note file with the given list.
	Save(ctx context.Context, name string, notes NoteList) error

	// Remove deletes the note file. It returns ErrNotFound if it does not exist.
	Remove(ctx context.Context, name string) error

	// List returns the names of the note files, optionally filtered by a glob pattern.
	List(ctx context.Context, pattern string) ([]string, error)

	// Initialize ensures the underlying storage is ready (e.g. create directories, git init).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can report changes made to a
// note file by other processes.
type Watchable interface {
	Watch(ctx context.Context, name string) (<-chan Event, error)
}

// Launcher opens a file in an interactive program and blocks until it exits.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}
