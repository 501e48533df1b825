package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todo/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodoItem decodes one todos row. An unknown icon tag or a malformed id
// is a decode error and is returned as-is, never repaired.
func scanTodoItem(row rowScanner) (models.TodoItem, error) {
	var id, task, tag string
	if err := row.Scan(&id, &task, &tag); err != nil {
		return models.TodoItem{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("%w: bad id %q: %v", ErrCorruptRow, id, err)
	}

	icon, err := models.ParseIconTag(tag)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("item %s: %w", id, err)
	}

	return models.TodoItem{ID: parsedID, Task: task, Icon: icon}, nil
}
