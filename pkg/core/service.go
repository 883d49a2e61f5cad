package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Editor applies note-list edits on top of a Store.
// Every mutation is a single load-mutate-save pass.
type Editor struct {
	store    Store
	launcher Launcher
	logger   *slog.Logger
	policy   DeletePolicy
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithEditorLogger sets the logger used by the Editor.
func WithEditorLogger(logger *slog.Logger) EditorOption {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLauncher sets the program launcher used by Edit.
func WithLauncher(l Launcher) EditorOption {
	return func(e *Editor) {
		e.launcher = l
	}
}

// WithDeletePolicy sets how Delete treats out-of-range positions.
func WithDeletePolicy(p DeletePolicy) EditorOption {
	return func(e *Editor) {
		e.policy = p
	}
}

// NewEditor creates a new Editor.
func NewEditor(store Store, opts ...EditorOption) *Editor {
	e := &Editor{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DeleteResult describes the outcome of Delete.
type DeleteResult struct {
	Notes   NoteList
	Removed []int // 1-based positions against the list before deletion
	Skipped []int // out-of-range positions that were ignored
}

// Notes returns the current note list.
func (e *Editor) Notes(ctx context.Context, name string) (NoteList, error) {
	return e.store.Load(ctx, name)
}

// Insert places value at the 1-based index, or appends it when index is nil.
func (e *Editor) Insert(ctx context.Context, name, value string, index *int) (NoteList, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}

	notes, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	updated, err := notes.Insert(value, index)
	if err != nil {
		return nil, err
	}

	reason := fmt.Sprintf("insert line %d", len(updated))
	if index != nil {
		reason = fmt.Sprintf("insert line %d", *index)
	}
	if err := e.save(ctx, name, updated, reason); err != nil {
		return nil, err
	}
	return updated, nil
}

// Change replaces the line at the 1-based index, or the last line when index is nil.
func (e *Editor) Change(ctx context.Context, name, value string, index *int) (NoteList, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}

	notes, err := e.store.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	updated, err := notes.Change(value, index)
	if err != nil {
		return nil, err
	}

	pos := len(updated)
	if index != nil {
		pos = *index
	}
	if err := e.save(ctx, name, updated, fmt.Sprintf("change line %d", pos)); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the given 1-based positions, or the last line when none are given.
// Out-of-range positions are skipped and reported unless the policy is DeleteStrict.
func (e *Editor) Delete(ctx context.Context, name string, indices []int) (DeleteResult, error) {
	notes, err := e.store.Load(ctx, name)
	if err != nil {
		return DeleteResult{}, err
	}

	updated, removed, skipped, err := notes.Remove(indices, e.policy)
	if err != nil {
		return DeleteResult{}, err
	}
	for _, i := range skipped {
		e.logger.Debug("skipping invalid index", "note", displayName(name), "index", i, "len", len(notes))
	}

	if err := e.save(ctx, name, updated, fmt.Sprintf("delete lines %v", removed)); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Notes: updated, Removed: removed, Skipped: skipped}, nil
}

// DeleteFile removes the note file itself.
func (e *Editor) DeleteFile(ctx context.Context, name string) error {
	if err := e.store.Remove(ctx, name); err != nil {
		return err
	}
	e.logger.Info("note deleted", "note", displayName(name))
	return nil
}

// ListFiles returns the names of all note files, optionally filtered by a glob pattern.
func (e *Editor) ListFiles(ctx context.Context, pattern string) ([]string, error) {
	return e.store.List(ctx, pattern)
}

// Edit opens the note file in the configured external program.
func (e *Editor) Edit(ctx context.Context, name string) error {
	if e.launcher == nil {
		return fmt.Errorf("%w: no launcher configured", ErrEditorLaunchFailed)
	}
	path, err := e.store.Path(name)
	if err != nil {
		return err
	}
	e.logger.Debug("launching editor", "path", path)
	return e.launcher.Launch(ctx, path)
}

// Watch observes changes to a note file if the store supports it.
func (e *Editor) Watch(ctx context.Context, name string) (<-chan Event, error) {
	w, ok := e.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, name)
}

func (e *Editor) save(ctx context.Context, name string, notes NoteList, reason string) error {
	ctx = context.WithValue(ctx, ChangeReasonKey, reason)
	if err := e.store.Save(ctx, name, notes); err != nil {
		return err
	}
	e.logger.Debug("notes saved", "note", displayName(name), "lines", len(notes), "reason", reason)
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "default"
	}
	return name
}
