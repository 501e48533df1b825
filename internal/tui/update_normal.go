package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UIState.SetMode(state.HelpMode)
		return m, nil
	case km.AddItem:
		return m.handleAddItem()
	case km.EditItem, "enter":
		return m.handleEditItem()
	case km.DeleteItem:
		return m.handleDeleteItem()
	case km.NextItem, "down":
		m.UIState.MoveDown(len(m.Items))
		return m, nil
	case km.PrevItem, "up":
		m.UIState.MoveUp()
		return m, nil
	}
	return m, nil
}

// handleAddItem opens the input for a new item
func (m Model) handleAddItem() (tea.Model, tea.Cmd) {
	m.InputState.Start(models.NewTodoItem("", m.Config.Icon()))
	m.Input.SetValue("")
	m.Input.Placeholder = "What needs doing?"
	m.UIState.SetMode(state.AddMode)
	return m, m.Input.Focus()
}

// handleEditItem starts editing the item under the cursor
func (m Model) handleEditItem() (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}

	m.Coord.OnEditItemSelected(item)
	m.InputState.Start(item)
	m.Input.SetValue(item.Task)
	m.Input.CursorEnd()
	m.Input.Placeholder = ""
	m.UIState.SetMode(state.EditMode)
	return m, m.Input.Focus()
}

// handleDeleteItem removes the item under the cursor.
// The list shrinks when the next state arrives.
func (m Model) handleDeleteItem() (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	m.Coord.RemoveItem(item)
	return m, nil
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space", " ":
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
