// Package repository adapts the item store's live snapshots into tagged
// results for the view layer.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// Repository is a thin layer over the item store. Reads become Results;
// writes pass straight through with no retry.
type Repository struct {
	store database.ItemStore
}

// New creates a repository over store
func New(store database.ItemStore) *Repository {
	return &Repository{store: store}
}

// GetItems emits Loading, then one Result per store snapshot. A snapshot
// carrying an error, or a panic while handling one, becomes an Error
// result instead of tearing down the stream. The channel closes when ctx is
// done or the store stops.
func (r *Repository) GetItems(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	out <- Loading()

	snapshots := r.store.ObserveAll(ctx)

	go func() {
		defer close(out)
		for snap := range snapshots {
			// Same last-state-wins policy as the store: replace a result
			// the reader has not picked up yet.
			select {
			case <-out:
			default:
			}
			select {
			case out <- toResult(snap):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func toResult(snap database.Snapshot) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered while reading todo items", "panic", rec)
			result = Failure(fmt.Errorf("reading todo items: %v", rec))
		}
	}()

	if snap.Err != nil {
		return Failure(snap.Err)
	}

	items := make([]models.TodoItem, len(snap.Items))
	copy(items, snap.Items)
	return Success(items)
}

// AddItem inserts item, replacing any item with the same id
func (r *Repository) AddItem(ctx context.Context, item models.TodoItem) error {
	return r.store.Insert(ctx, item)
}

// RemoveItem deletes item by id
func (r *Repository) RemoveItem(ctx context.Context, item models.TodoItem) error {
	return r.store.Delete(ctx, item)
}

// UpdateItem replaces the stored item with the same id
func (r *Repository) UpdateItem(ctx context.Context, item models.TodoItem) error {
	return r.store.Update(ctx, item)
}

// Clear removes every item
func (r *Repository) Clear(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}
