package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/coordinator"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/state"
	"github.com/thenoetrevino/todo/internal/tui/theme"
)

// Coordinator is the view-state holder the TUI reads from and sends
// intents to
type Coordinator interface {
	Subscribe(ctx context.Context) <-chan coordinator.State
	Editing() (models.TodoItem, bool)
	OnEditItemSelected(item models.TodoItem)
	OnEditItemChange(item models.TodoItem)
	OnEditDone()
	AddItem(item models.TodoItem)
	RemoveItem(item models.TodoItem)
}

// Compile-time verification that *coordinator.Coordinator satisfies Coordinator
var _ Coordinator = (*coordinator.Coordinator)(nil)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Coord  Coordinator
	Config *config.Config

	// States is the coordinator subscription, read by waitForState
	States <-chan coordinator.State

	// Items is the last good list; error results leave it untouched
	Items  []models.TodoItem
	Loaded bool

	UIState           *state.UIState
	InputState        *state.InputState
	NotificationState *state.NotificationState

	Input  textinput.Model
	styles styles
}

// New creates the TUI model and subscribes it to coord
func New(ctx context.Context, coord Coordinator, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 500

	return Model{
		Ctx:               ctx,
		Coord:             coord,
		Config:            cfg,
		States:            coord.Subscribe(ctx),
		UIState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		NotificationState: state.NewNotificationState(),
		Input:             input,
		styles:            newStyles(),
	}
}

// Init starts listening for coordinator state
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return m.waitForState()
}

// selectedItem returns the item under the cursor
func (m Model) selectedItem() (models.TodoItem, bool) {
	i := m.UIState.Selected()
	if i < 0 || i >= len(m.Items) {
		return models.TodoItem{}, false
	}
	return m.Items[i], true
}
