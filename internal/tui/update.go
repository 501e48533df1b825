package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todo/internal/coordinator"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

const whoops = "Whoops, something went wrong"

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.applyState(msg.State)
		return m, m.waitForState()

	case subscriptionClosedMsg:
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		switch m.UIState.Mode() {
		case state.AddMode:
			return m.handleAddMode(msg)
		case state.EditMode:
			return m.handleEditMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Cursor blink and friends belong to the text input
	if m.inputActive() {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyState folds a coordinator state into the model
func (m *Model) applyState(s coordinator.State) {
	switch {
	case s.Items.IsSuccess():
		m.Items = s.Items.Items
		m.Loaded = true
		m.NotificationState.ClearLevel(state.LevelError)
		m.UIState.ClampSelection(len(m.Items))
	case s.Items.IsError():
		slog.Debug("showing error notice", "error", s.Items.Err)
		m.NotificationState.Add(state.LevelError, whoops)
	}

	// The edit target can disappear underneath us, for example when the
	// item is removed. The coordinator is the authority, not this message.
	if m.UIState.Mode() == state.EditMode {
		if _, editing := m.Coord.Editing(); !editing {
			m.leaveInput()
		}
	}
}

func (m Model) inputActive() bool {
	mode := m.UIState.Mode()
	return mode == state.AddMode || mode == state.EditMode
}

// leaveInput returns to normal mode and resets the text input
func (m *Model) leaveInput() {
	m.Input.Blur()
	m.Input.SetValue("")
	m.InputState.Clear()
	m.UIState.SetMode(state.NormalMode)
}
