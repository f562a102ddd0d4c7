package watcher

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

// debounceWindow is how long the watcher waits after the last event before
// reporting a batch.
const debounceWindow = 250 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	logger ports.Logger
}

// NewWatcher creates a new Watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Watch blocks and invokes onChange with debounced batches of changed paths
// under dir until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string, onChange func(paths []string)) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsWatcher.Close() }()

	if err := fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
	}

	debouncer := NewDebouncer(debounceWindow, onChange)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				debouncer.Add(event.Name)
			}
		case watchErr, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error: " + watchErr.Error())
		}
	}
}

var _ ports.Watcher = (*Watcher)(nil)
