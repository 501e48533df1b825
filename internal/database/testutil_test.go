package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestStore creates a store over a fresh in-memory database
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(context.Background(), setupTestDB(t))
	t.Cleanup(store.Close)
	return store
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "todo-test.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	return newDB
}

// ============================================================================
// SNAPSHOT HELPERS
// ============================================================================

// waitForSnapshot reads snapshots until match returns true
func waitForSnapshot(t *testing.T, ch <-chan Snapshot, match func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	var last Snapshot
	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				t.Fatalf("Snapshot channel closed; last snapshot: %+v", last)
			}
			last = snap
			if match(snap) {
				return snap
			}
		case <-deadline:
			t.Fatalf("Timeout waiting for snapshot; last snapshot: %+v", last)
		}
	}
}

// waitForCount waits for a successful snapshot holding n items
func waitForCount(t *testing.T, ch <-chan Snapshot, n int) Snapshot {
	t.Helper()
	return waitForSnapshot(t, ch, func(s Snapshot) bool {
		return s.Err == nil && len(s.Items) == n
	})
}
