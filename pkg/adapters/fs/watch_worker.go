package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/todo/pkg/core"
)

// WatchDebounce is how long the watcher waits for a burst of filesystem
// events on the note file to settle before reporting one change.
const WatchDebounce = 50 * time.Millisecond

type watchWorker struct {
	store   *Store
	name    string
	target  string
	events  chan<- core.Event
	watcher *fsnotify.Watcher
	existed bool
}

// Watch reports changes to the named note file until ctx is cancelled.
// The parent directory is watched rather than the file so that atomic
// renames and recreations are seen. The returned channel is closed when the
// watcher stops.
func (s *Store) Watch(ctx context.Context, name string) (<-chan core.Event, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directories: %w", core.ErrIO, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)
	w := &watchWorker{
		store:   s,
		name:    name,
		target:  filepath.Clean(path),
		events:  events,
		watcher: watcher,
		existed: fileExists(path),
	}

	s.setWatcherActive(true)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return w.run(ctx)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// classify maps the state of the file before and after a burst of events to
// the change it represents.
func classify(existed, exists bool) core.EventType {
	switch {
	case !exists:
		return core.EventDelete
	case !existed:
		return core.EventCreate
	default:
		return core.EventModify
	}
}

// run is the main event loop. Events for the target file are coalesced and
// classified once the debounce window passes without further activity, so an
// atomic save (temp file renamed over the note) is reported as one change.
func (w *watchWorker) run(ctx context.Context) error {
	logger := w.store.config.Logger

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	defer timer.Stop()

	existed := w.existed
	dirty := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			logger.Debug("event received", "name", event.Name, "op", event.Op.String())

			if filepath.Clean(event.Name) != w.target || !relevant(event) {
				continue
			}
			dirty = true
			timer.Reset(WatchDebounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("fsnotify error", "error", err)

		case <-timer.C:
			if !dirty {
				continue
			}
			dirty = false

			exists := fileExists(w.target)
			if !exists && !existed {
				continue
			}
			event := core.Event{
				Type:      classify(existed, exists),
				Name:      w.name,
				Path:      w.target,
				Timestamp: time.Now().Unix(),
			}
			existed = exists

			select {
			case w.events <- event:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
