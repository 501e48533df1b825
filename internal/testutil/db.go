package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestStore creates a store over a fresh in-memory database
func SetupTestStore(t *testing.T) (*sql.DB, *database.Store) {
	t.Helper()
	db := SetupTestDB(t)
	store := database.NewStore(context.Background(), db)
	t.Cleanup(store.Close)
	return db, store
}

// CreateTestItem inserts an item directly through SQL and returns it
func CreateTestItem(t *testing.T, db *sql.DB, task string, icon models.Icon) models.TodoItem {
	t.Helper()
	item := models.NewTodoItem(task, icon)
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (id, task, icon) VALUES (?, ?, ?)",
		item.ID.String(), item.Task, item.Icon.Tag())
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item
}

// CountItems returns the number of rows in the todos table
func CountItems(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM todos").Scan(&count); err != nil {
		t.Fatalf("Failed to count items: %v", err)
	}
	return count
}
