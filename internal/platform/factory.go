// Package platform wires configuration, storage and the editor together.
package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/todo/pkg/adapters/fs"
	"github.com/aretw0/todo/pkg/adapters/process"
	"github.com/aretw0/todo/pkg/core"
)

// New builds a ready to use Editor from the given options.
//
//	editor, err := platform.New(platform.WithFile("~/.todo"))
func New(ctx context.Context, opts ...Option) (*core.Editor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	store := o.store
	if store == nil {
		fsStore, err := newFSStore(o)
		if err != nil {
			return nil, err
		}
		store = fsStore
	}

	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	launcher := o.launcher
	if launcher == nil {
		launcher = process.NewLauncher(o.editor, o.logger)
	}

	policy := core.DeleteLenient
	if o.strictDelete {
		policy = core.DeleteStrict
	}

	return core.NewEditor(store,
		core.WithEditorLogger(o.logger),
		core.WithLauncher(launcher),
		core.WithDeletePolicy(policy),
	), nil
}

func newFSStore(o *options) (*fs.Store, error) {
	dir := o.dir
	if dir == "" {
		var err error
		dir, err = DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data directory: %w", err)
		}
	}

	file := o.file
	if file != "" {
		file = ExpandPath(file)
	}

	return fs.NewStore(fs.Config{
		Dir:         ExpandPath(dir),
		File:        file,
		DefaultName: o.defaultName,
		Versioning:  o.versioning,
		Logger:      o.logger,
	}), nil
}
