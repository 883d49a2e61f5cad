package core

import (
	"github.com/aretw0/introspection"
)

// EditorState exposes internal state for observability.
type EditorState struct {
	StoreType    string `json:"store_type"`
	Store        any    `json:"store,omitempty"`
	StrictDelete bool   `json:"strict_delete"`
	CanEdit      bool   `json:"can_edit"`
	CanWatch     bool   `json:"can_watch"`
}

// State implements introspection.Introspectable.
func (e *Editor) State() any {
	storeType := "unknown"
	var storeState any
	if e.store != nil {
		storeType = "store"
		if comp, ok := e.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
		if intro, ok := e.store.(introspection.Introspectable); ok {
			storeState = intro.State()
		}
	}

	_, canWatch := e.store.(Watchable)

	return EditorState{
		StoreType:    storeType,
		Store:        storeState,
		StrictDelete: e.policy == DeleteStrict,
		CanEdit:      e.launcher != nil,
		CanWatch:     canWatch,
	}
}

// ComponentType implements introspection.Component.
func (e *Editor) ComponentType() string {
	return "editor"
}

var _ introspection.Introspectable = (*Editor)(nil)
var _ introspection.Component = (*Editor)(nil)
