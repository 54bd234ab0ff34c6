package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/idilsaglam/bucket/internal/debug"
)

// Watch emits a value each time the document changes on disk, coalescing
// bursts within delay. The channel closes when ctx is done or the watcher
// shuts down; watcher errors are traced and watching continues. The parent
// directory is watched so atomic renames are seen.
func (s *Store) Watch(ctx context.Context, delay time.Duration) (<-chan struct{}, error) {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("watch: ensure dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		watchLoop(ctx, watcher.Events, watcher.Errors, filepath.Clean(s.Path), delay, out)
	}()
	return out, nil
}

// watchLoop debounces events for target into out and closes out on return.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error,
	target string, delay time.Duration, out chan<- struct{}) {
	defer close(out)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-pending:
			pending = nil
			select {
			case out <- struct{}{}:
			default:
				// a change is already queued
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			debug.Log("jsonstore: watch %s: %v", target, err)
		case evt, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = time.After(delay)
		}
	}
}
