package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/thenoetrevino/todo/internal/events"
	"github.com/thenoetrevino/todo/internal/models"
)

// Snapshot is one state of the todo table as seen by observers.
// Err is set when the table could not be read or decoded.
// Items is shared between observers and must not be modified.
type Snapshot struct {
	Items    []models.TodoItem
	Err      error
	Sequence int64 // Monotonically increasing per store
}

// ItemStore is the storage contract consumed by the repository layer
type ItemStore interface {
	ObserveAll(ctx context.Context) <-chan Snapshot
	Insert(ctx context.Context, item models.TodoItem) error
	Update(ctx context.Context, item models.TodoItem) error
	Delete(ctx context.Context, item models.TodoItem) error
	DeleteAll(ctx context.Context) error
}

// Compile-time verification that *Store implements ItemStore
var _ ItemStore = (*Store)(nil)

// Store persists todo items and pushes a fresh snapshot to every observer
// after each mutation.
type Store struct {
	db      *sql.DB
	subject *events.Subject[Snapshot]

	// mu serializes mutation+publish so observers see snapshots in the
	// order mutations were applied.
	mu       sync.Mutex
	sequence int64
	closed   bool
}

// NewStore wraps db and loads the initial snapshot
func NewStore(ctx context.Context, db *sql.DB) *Store {
	s := &Store{
		db:      db,
		subject: events.NewSubject[Snapshot](),
	}

	s.mu.Lock()
	s.refreshLocked(ctx)
	s.mu.Unlock()

	return s
}

// ObserveAll returns a live view of the table. The current snapshot is
// delivered immediately, then one snapshot per mutation; a slow observer
// only sees the latest. The channel closes when ctx is done or the store
// is closed.
func (s *Store) ObserveAll(ctx context.Context) <-chan Snapshot {
	return s.subject.Subscribe(ctx)
}

// GetAll reads every item in insertion order
func (s *Store) GetAll(ctx context.Context) ([]models.TodoItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, task, icon FROM todos ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	items := []models.TodoItem{}
	for rows.Next() {
		item, err := scanTodoItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	return items, nil
}

// Get reads one item by id.
// Returns ErrItemNotFound when no such item exists.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (models.TodoItem, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, task, icon FROM todos WHERE id = ?`, id.String())
	item, err := scanTodoItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TodoItem{}, fmt.Errorf("item %s: %w", id, ErrItemNotFound)
	}
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("failed to get item %s: %w", id, err)
	}
	return item, nil
}

// Insert adds item, replacing any stored item with the same id
func (s *Store) Insert(ctx context.Context, item models.TodoItem) error {
	if !item.Icon.Valid() {
		return fmt.Errorf("failed to insert item %s: %w: %d", item.ID, models.ErrUnknownIcon, int(item.Icon))
	}

	return s.mutate(ctx, "insert", func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO todos (id, task, icon) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET task = excluded.task, icon = excluded.icon`,
			item.ID.String(), item.Task, item.Icon.Tag(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
		}
		return nil
	})
}

// InsertAll upserts items in a single transaction
func (s *Store) InsertAll(ctx context.Context, items []models.TodoItem) error {
	for _, item := range items {
		if !item.Icon.Valid() {
			return fmt.Errorf("failed to insert item %s: %w: %d", item.ID, models.ErrUnknownIcon, int(item.Icon))
		}
	}

	return s.mutate(ctx, "insert_all", func(ctx context.Context) error {
		return withTx(ctx, s.db, func(tx *sql.Tx) error {
			stmt, err := tx.PrepareContext(ctx,
				`INSERT INTO todos (id, task, icon) VALUES (?, ?, ?)
				 ON CONFLICT(id) DO UPDATE SET task = excluded.task, icon = excluded.icon`,
			)
			if err != nil {
				return fmt.Errorf("failed to prepare insert: %w", err)
			}
			defer stmt.Close()

			for _, item := range items {
				if _, err := stmt.ExecContext(ctx, item.ID.String(), item.Task, item.Icon.Tag()); err != nil {
					return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
				}
			}
			return nil
		})
	})
}

// Update replaces the stored item with the same id.
// Returns ErrItemNotFound when no such item exists.
func (s *Store) Update(ctx context.Context, item models.TodoItem) error {
	if !item.Icon.Valid() {
		return fmt.Errorf("failed to update item %s: %w: %d", item.ID, models.ErrUnknownIcon, int(item.Icon))
	}

	return s.mutate(ctx, "update", func(ctx context.Context) error {
		result, err := s.db.ExecContext(ctx,
			`UPDATE todos SET task = ?, icon = ? WHERE id = ?`,
			item.Task, item.Icon.Tag(), item.ID.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to update item %s: %w", item.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update item %s: %w", item.ID, err)
		}
		if affected == 0 {
			return fmt.Errorf("item %s: %w", item.ID, ErrItemNotFound)
		}
		return nil
	})
}

// Delete removes the item with the same id; absent items are ignored
func (s *Store) Delete(ctx context.Context, item models.TodoItem) error {
	return s.mutate(ctx, "delete", func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, item.ID.String()); err != nil {
			return fmt.Errorf("failed to delete item %s: %w", item.ID, err)
		}
		return nil
	})
}

// DeleteAll clears the table
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.mutate(ctx, "delete_all", func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM todos`); err != nil {
			return fmt.Errorf("failed to delete all items: %w", err)
		}
		return nil
	})
}

// Refresh re-reads the table and publishes the result. Used when the
// database was changed by another process.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.refreshLocked(ctx)
	return nil
}

// Metrics returns the notification counters
func (s *Store) Metrics() *events.Metrics {
	return s.subject.Metrics()
}

// Close stops change notification and closes every observer channel.
// The underlying *sql.DB is owned by the caller.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.subject.Close()
}

func (s *Store) mutate(ctx context.Context, op string, fn func(context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if err := fn(ctx); err != nil {
		slog.Error("store mutation failed", "op", op, "error", err)
		return err
	}

	// The mutation is committed; publish even if the caller goes away now.
	s.refreshLocked(context.WithoutCancel(ctx))
	slog.Debug("store mutation applied", "op", op, "sequence", s.sequence)
	return nil
}

// refreshLocked must be called with s.mu held
func (s *Store) refreshLocked(ctx context.Context) {
	items, err := s.GetAll(ctx)
	if err != nil {
		slog.Error("failed to load todo snapshot", "error", err)
		items = nil
	}

	s.sequence++
	s.subject.Publish(Snapshot{
		Items:    items,
		Err:      err,
		Sequence: s.sequence,
	})
}
