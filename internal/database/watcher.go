package database

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long the watcher waits for a burst of file
// writes to settle before refreshing
const DefaultWatchDebounce = 100 * time.Millisecond

// Watch refreshes the store whenever the database file (or its WAL) is
// written, so changes made by another process reach live observers.
// Watching stops when ctx is done.
func (s *Store) Watch(ctx context.Context, dbPath string, debounce time.Duration) error {
	if dbPath == MemoryPath {
		return nil
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory: SQLite replaces and creates the -wal file.
	if err := watcher.Add(filepath.Dir(dbPath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(dbPath), err)
	}

	go s.watchLoop(ctx, watcher, filepath.Base(dbPath), debounce)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, base string, debounce time.Duration) {
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("error closing file watcher", "error", err)
		}
	}()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isDatabaseFile(event.Name, base) || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "error", err)

		case <-timer.C:
			if err := s.Refresh(ctx); err != nil {
				slog.Debug("watch refresh stopped", "error", err)
				return
			}
		}
	}
}

// isDatabaseFile reports whether name is the database file or its WAL
func isDatabaseFile(name, base string) bool {
	n := filepath.Base(name)
	return n == base || n == base+"-wal"
}
