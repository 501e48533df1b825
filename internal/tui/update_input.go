package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ============================================================================
// ADD MODE HANDLERS
// ============================================================================

// handleAddMode handles typing a new item. Blank items are never saved.
func (m Model) handleAddMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case km.Cancel:
		m.leaveInput()
		return m, nil
	case km.CycleIcon:
		m.InputState.CycleIcon()
		return m, nil
	case km.Save:
		m.InputState.SetTask(strings.TrimSpace(m.Input.Value()))
		if m.InputState.IsEmpty() {
			return m, nil
		}
		m.Coord.AddItem(m.InputState.Draft)
		m.leaveInput()
		// New items land at the end of the list
		m.UIState.SetSelected(len(m.Items))
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.InputState.SetTask(m.Input.Value())
	return m, cmd
}

// ============================================================================
// EDIT MODE HANDLERS
// ============================================================================

// handleEditMode forwards every change of the edited item to the
// coordinator. Save and cancel both finish the edit.
func (m Model) handleEditMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "ctrl+c":
		m.finishEdit()
		return m, tea.Quit
	case km.Save, km.Cancel:
		m.finishEdit()
		return m, nil
	case km.CycleIcon:
		m.InputState.CycleIcon()
		m.Coord.OnEditItemChange(m.InputState.Draft)
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	if m.InputState.SetTask(m.Input.Value()) {
		m.Coord.OnEditItemChange(m.InputState.Draft)
	}
	return m, cmd
}

// finishEdit saves the edit buffer if the coordinator is still editing
func (m *Model) finishEdit() {
	if _, editing := m.Coord.Editing(); editing {
		m.Coord.OnEditDone()
	}
	m.leaveInput()
}
