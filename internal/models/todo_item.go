package models

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// TodoItem is a single entry in the todo list.
// ID is generated at creation and never changes.
type TodoItem struct {
	ID   uuid.UUID `json:"id"`
	Task string    `json:"task"`
	Icon Icon      `json:"icon"`
}

// NewTodoItem creates an item with a fresh id
func NewTodoItem(task string, icon Icon) TodoItem {
	return TodoItem{
		ID:   uuid.New(),
		Task: task,
		Icon: icon,
	}
}

// GetID returns the id in canonical string form
func (t TodoItem) GetID() string {
	return t.ID.String()
}

// WithTask returns a copy of the item with a different task
func (t TodoItem) WithTask(task string) TodoItem {
	t.Task = task
	return t
}

// WithIcon returns a copy of the item with a different icon
func (t TodoItem) WithIcon(icon Icon) TodoItem {
	t.Icon = icon
	return t
}

// ValidateTask rejects blank tasks. Only the entry-creation flows call it;
// the edit buffer is allowed to hold a blank task.
func ValidateTask(task string) error {
	if strings.TrimSpace(task) == "" {
		return ErrEmptyTask
	}
	return nil
}

var randomTasks = []string{
	"Buy milk",
	"Water the plants",
	"Call mom",
	"Renew passport",
	"Book dentist appointment",
	"Pay electricity bill",
	"Clean the garage",
	"Write weekly report",
	"Return library books",
	"Plan weekend trip",
}

// RandomTodoItem generates a synthetic item for previews, seeding and tests
func RandomTodoItem() TodoItem {
	return NewTodoItem(
		randomTasks[rand.IntN(len(randomTasks))],
		Icons[rand.IntN(len(Icons))],
	)
}
