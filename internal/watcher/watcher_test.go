package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

func TestWatcherHandlesMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 4)

	filter := func(path string) bool { return strings.HasSuffix(path, ".srt") }
	handler := func(ctx context.Context, path string) error {
		if logger.RunID(ctx) == "" {
			t.Error("handler context should carry a run ID")
		}
		handled <- filepath.Base(path)
		return nil
	}

	w, err := New(dir, filter, handler, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settleDelay = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the event loop a moment to start.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "talk.srt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-handled:
		if name != "talk.srt" {
			t.Errorf("handled %q, want talk.srt", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}

	select {
	case name := <-handled:
		t.Errorf("unexpected extra file handled: %s", name)
	default:
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, func(context.Context, string) error { return nil }, logger.Nop(), 0)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

func TestAcquireSlot(t *testing.T) {
	w := &implWatcher{slots: make(chan struct{}, 1)}
	ctx := context.Background()

	if err := w.acquireSlot(ctx); err != nil {
		t.Fatalf("acquireSlot() error = %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := w.acquireSlot(cancelled); !errors.Is(err, context.Canceled) {
		t.Errorf("acquireSlot() with all slots taken = %v, want context.Canceled", err)
	}

	w.releaseSlot()
	if err := w.acquireSlot(ctx); err != nil {
		t.Errorf("acquireSlot() after release error = %v", err)
	}
}
