package filesystem

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports when a document of a Store is replaced from outside.
// Events for the same key arriving within the debounce window collapse into
// one callback.
type Watcher struct {
	store    *Store
	keys     map[string]bool
	debounce time.Duration
	log      *slog.Logger
}

// NewWatcher watches the given keys of store
func NewWatcher(store *Store, debounce time.Duration, logger *slog.Logger, keys ...string) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return &Watcher{store: store, keys: set, debounce: debounce, log: logger}
}

// Run blocks until ctx ends, calling onChange with the key of every document
// that was written, created or renamed into place. The directory is watched
// rather than the files, since Put replaces files by rename.
func (w *Watcher) Run(ctx context.Context, onChange func(key string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.store.Dir()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.store.Dir(), err)
	}

	timers := make(map[string]*time.Timer)
	fire := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			key := w.keyFor(event.Name)
			if key == "" || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if t, ok := timers[key]; ok {
				t.Stop()
			}
			timers[key] = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- key:
				case <-ctx.Done():
				}
			})

		case key := <-fire:
			delete(timers, key)
			onChange(key)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) keyFor(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".json" {
		return ""
	}
	key := base[:len(base)-len(ext)]
	if !w.keys[key] {
		return ""
	}
	return key
}
