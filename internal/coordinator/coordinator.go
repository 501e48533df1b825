// Package coordinator holds the view state of the to-do list: the latest
// items result and which item, if any, is being edited.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/todo/internal/events"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/repository"
)

// Repo is the part of the repository the coordinator talks to
type Repo interface {
	GetItems(ctx context.Context) <-chan repository.Result
	AddItem(ctx context.Context, item models.TodoItem) error
	RemoveItem(ctx context.Context, item models.TodoItem) error
	UpdateItem(ctx context.Context, item models.TodoItem) error
}

// Compile-time verification that *repository.Repository satisfies Repo
var _ Repo = (*repository.Repository)(nil)

// State is what the rendering surface draws.
// Editing is nil when nothing is being edited.
type State struct {
	Items   repository.Result
	Editing *models.TodoItem
}

// IsEditing reports whether an item is being edited
func (s State) IsEditing() bool {
	return s.Editing != nil
}

// Coordinator turns user intents into repository calls and keeps the
// editing state machine. Intents never block on storage.
type Coordinator struct {
	repo    Repo
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	subject *events.Subject[State]

	mu      sync.Mutex
	items   repository.Result
	editing *models.TodoItem
	closed  bool
}

// New starts observing repo. The coordinator lives until ctx is done or
// Close is called.
func New(ctx context.Context, repo Repo) *Coordinator {
	ctx, cancel := context.WithCancel(ctx)

	c := &Coordinator{
		repo:    repo,
		ctx:     ctx,
		cancel:  cancel,
		items:   repository.Loading(),
		subject: events.NewSubjectWithValue(State{Items: repository.Loading()}),
	}

	results := repo.GetItems(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for r := range results {
			c.setItems(r)
		}
	}()

	return c
}

// Subscribe returns a channel yielding the current state and then every
// change. Slow readers only see the latest state.
func (c *Coordinator) Subscribe(ctx context.Context) <-chan State {
	return c.subject.Subscribe(ctx)
}

// State returns a snapshot of the current state
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Editing returns the item being edited, if any
func (c *Coordinator) Editing() (models.TodoItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editing == nil {
		return models.TodoItem{}, false
	}
	return *c.editing, true
}

// OnEditItemSelected starts editing item, replacing any current edit
func (c *Coordinator) OnEditItemSelected(item models.TodoItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.editing = &item
	slog.Debug("edit started", "id", item.ID)
	c.publishLocked()
}

// OnEditItemChange replaces the edit buffer. item must carry the id of the
// item being edited; anything else is a programming error and panics.
func (c *Coordinator) OnEditItemChange(item models.TodoItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editing == nil {
		panic(fmt.Errorf("edit change for %s: %w", item.ID, ErrNotEditing))
	}
	if c.editing.ID != item.ID {
		panic(fmt.Errorf("edit change for %s while editing %s: %w", item.ID, c.editing.ID, ErrEditMismatch))
	}

	c.editing = &item
	c.publishLocked()
}

// OnEditDone saves the edit buffer and leaves editing. Panics when nothing
// is being edited.
func (c *Coordinator) OnEditDone() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editing == nil {
		panic(fmt.Errorf("edit done: %w", ErrNotEditing))
	}

	item := *c.editing
	c.editing = nil
	c.publishLocked()
	c.dispatchLocked("update", item, c.repo.UpdateItem)
}

// AddItem saves a new item. The editing state is untouched.
func (c *Coordinator) AddItem(item models.TodoItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchLocked("add", item, c.repo.AddItem)
}

// RemoveItem deletes item and stops editing it if it was the edit target
func (c *Coordinator) RemoveItem(item models.TodoItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editing != nil && c.editing.ID == item.ID {
		c.editing = nil
		c.publishLocked()
	}
	c.dispatchLocked("remove", item, c.repo.RemoveItem)
}

// Close stops observing the repository, cancels in-flight mutations and
// waits for them to finish. Safe to call more than once.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
	c.subject.Close()
}

func (c *Coordinator) setItems(r repository.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = r
	c.publishLocked()
}

// dispatchLocked runs op on a background goroutine. Must hold c.mu.
func (c *Coordinator) dispatchLocked(name string, item models.TodoItem, op func(context.Context, models.TodoItem) error) {
	if c.closed {
		slog.Warn("dropping intent after close", "op", name, "id", item.ID)
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		err := op(c.ctx, item)
		switch {
		case err == nil:
			slog.Debug("intent applied", "op", name, "id", item.ID)
		case errors.Is(err, context.Canceled) && c.ctx.Err() != nil:
			slog.Debug("intent cancelled", "op", name, "id", item.ID)
		default:
			slog.Error("intent failed", "op", name, "id", item.ID, "error", err)
			c.setItems(repository.Failure(fmt.Errorf("%s item: %w", name, err)))
		}
	}()
}

// stateLocked copies the current state. Must hold c.mu.
func (c *Coordinator) stateLocked() State {
	s := State{Items: c.items}
	if c.editing != nil {
		e := *c.editing
		s.Editing = &e
	}
	return s
}

func (c *Coordinator) publishLocked() {
	c.subject.Publish(c.stateLocked())
}
