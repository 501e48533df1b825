package state

import (
	"github.com/thenoetrevino/todo/internal/models"
)

// InputState holds the item being typed in add and edit mode.
// In add mode Draft is a fresh item that has not been saved yet; in edit
// mode it mirrors the coordinator's edit buffer.
type InputState struct {
	// Draft is the item the text input writes into
	Draft models.TodoItem

	// Initial is Draft as it was when input started, for change detection
	Initial models.TodoItem
}

// NewInputState creates a new InputState with an empty draft.
func NewInputState() *InputState {
	return &InputState{}
}

// Start begins editing item.
func (s *InputState) Start(item models.TodoItem) {
	s.Draft = item
	s.Initial = item
}

// Clear resets the draft.
func (s *InputState) Clear() {
	s.Draft = models.TodoItem{}
	s.Initial = models.TodoItem{}
}

// SetTask replaces the draft's task. Returns false when nothing changed.
func (s *InputState) SetTask(task string) bool {
	if s.Draft.Task == task {
		return false
	}
	s.Draft = s.Draft.WithTask(task)
	return true
}

// CycleIcon moves the draft to the next icon.
func (s *InputState) CycleIcon() {
	s.Draft = s.Draft.WithIcon(s.Draft.Icon.Next())
}

// IsEmpty returns true if the draft task is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return models.ValidateTask(s.Draft.Task) != nil
}

// HasInputChanges returns true if the draft differs from its initial value.
func (s *InputState) HasInputChanges() bool {
	return s.Draft != s.Initial
}
