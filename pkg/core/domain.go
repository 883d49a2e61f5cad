// Package core holds the note-list editing rules and the contracts the
// storage adapters implement.
package core

import "fmt"

// NoteList is an ordered list of note lines.
// Positions are 1-based at the edges of the system and 0-based internally.
type NoteList []string

// EventType represents the type of change to a note file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note file observed on disk.
type Event struct {
	Type      EventType
	Name      string // note name, empty for the default note
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

type contextKey string

// ChangeReasonKey is the context key for passing a change reason to the store
// (used as the commit subject when versioning is enabled).
const ChangeReasonKey contextKey = "change_reason"
