package jsonstore

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/idilsaglam/bucket/internal/debug"
)

func TestWatchLoopSurvivesErrors(t *testing.T) {
	var trace bytes.Buffer
	debug.SetOutput(&trace)
	debug.SetEnabled(true)
	defer debug.SetEnabled(false)

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	out := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		watchLoop(ctx, events, errs, "/data/bucket.json", time.Millisecond, out)
		close(done)
	}()

	errs <- errors.New("queue overflow")
	events <- fsnotify.Event{Name: "/data/other.json", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/data/bucket.json", Op: fsnotify.Write}

	select {
	case _, ok := <-out:
		if !ok {
			t.Fatal("loop stopped after a watcher error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification after a watcher error")
	}
	// events is unbuffered, so the error was handled before the sends above
	if !strings.Contains(trace.String(), "queue overflow") {
		t.Fatalf("watcher error not traced: %q", trace.String())
	}

	close(errs)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop when the watcher shut down")
	}
	if _, ok := <-out; ok {
		t.Fatal("out not closed")
	}
}
