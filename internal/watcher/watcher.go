package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

// defaultSettleDelay gives the writer of a new file time to finish it.
const defaultSettleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir      string
	filter        Filter
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	slots         chan struct{}
	settleDelay   time.Duration
	wg            sync.WaitGroup
}

// Start monitors the input directory and hands matching new files to the handler.
// It returns after ctx is cancelled and in-flight handlers have finished.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)

	for {
		select {
		case <-ctx.Done():
			return w.drain(ctx)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if w.filter != nil && !w.filter(event.Name) {
				w.logger.Debug(ctx, "Ignoring file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file detected: %s", event.Name)

			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return w.drain(ctx)
			}

			// Blocks while maxConcurrent handlers are running
			if err := w.acquireSlot(ctx); err != nil {
				return w.drain(ctx)
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.releaseSlot()

				fileCtx := logger.WithRunID(ctx, logger.NewRunID())
				if err := w.handler(fileCtx, filePath); err != nil {
					w.logger.Error(fileCtx, "Failed to process %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// acquireSlot takes one of maxConcurrent handler slots, or fails once ctx is done.
func (w *implWatcher) acquireSlot(ctx context.Context) error {
	select {
	case w.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *implWatcher) releaseSlot() {
	<-w.slots
}

func (w *implWatcher) drain(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
	w.wg.Wait()
	w.logger.Info(ctx, "File watcher stopped")
	return ctx.Err()
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
