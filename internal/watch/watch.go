// Package watch re-runs a handler when a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/simonhull/wren/pkg/logger"
)

// Handler is called after a debounced burst of changes to the watched file.
type Handler func(ctx context.Context) error

// Watcher watches one file. It subscribes to the file's directory so that
// editors which save by renaming a temp file over the original still
// trigger a change.
type Watcher struct {
	path     string
	debounce time.Duration
	handler  Handler
	log      logger.Logger
}

// New creates a Watcher for path. Handler errors are logged, not returned:
// the watcher keeps running so the next save can fix the file.
func New(path string, debounce time.Duration, handler Handler, log logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		return nil, fmt.Errorf("debounce must be positive, got %s", debounce)
	}
	if log == nil {
		log = logger.Default()
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		handler:  handler,
		log:      log.WithFields(logger.F("file", path)),
	}, nil
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.path), err)
	}
	w.log.Info("watching for changes", logger.F("debounce", w.debounce))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("change detected", logger.F("op", event.Op))
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)

		case <-timer.C:
			if err := w.handler(ctx); err != nil {
				w.log.Error("reload failed", logger.Err(err))
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
