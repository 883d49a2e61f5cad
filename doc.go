// Package todo is the composition root for the todo notes tool.
//
// A note is a plain text file holding one entry per line. Named notes live in
// a data directory ($XDG_DATA_HOME/todo by default); the default note can be
// pinned to a fixed file such as ~/.todo.
//
// The editing rules live in pkg/core, the filesystem store in
// pkg/adapters/fs. This package wires them from functional options.
//
// Usage:
//
//	editor, err := todo.New(ctx, todo.WithFile("~/.todo"))
//	if err != nil {
//		return err
//	}
//
//	// Append a line to the default note.
//	notes, err := editor.Insert(ctx, "", "buy milk", nil)
package todo
