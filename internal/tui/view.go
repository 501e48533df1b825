package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/tui/notifications"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UIState.Mode() == state.HelpMode {
		view.Content = m.viewHelp()
		return view
	}

	view.Content = m.viewList()
	return view
}

func (m Model) viewList() string {
	var sections []string

	sections = append(sections, m.styles.title.Render(fmt.Sprintf("To-do (%d)", len(m.Items))), "")
	sections = append(sections, m.viewRows()...)

	if m.UIState.Mode() == state.AddMode {
		sections = append(sections, "", m.viewInputRow(m.InputState.Draft))
	}

	for _, n := range m.NotificationState.All() {
		sections = append(sections, "", notifications.RenderInlineFromState(n))
	}

	sections = append(sections, "", m.viewStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewRows() []string {
	if !m.Loaded {
		return []string{m.styles.subtle.Render("Loading…")}
	}
	if len(m.Items) == 0 {
		return []string{m.styles.subtle.Render(
			fmt.Sprintf("Nothing to do. Press %s to add one.", m.Config.KeyMappings.AddItem))}
	}

	offset := m.UIState.ScrollOffset()
	end := min(offset+m.UIState.VisibleRows(), len(m.Items))
	editing := m.UIState.Mode() == state.EditMode

	rows := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		item := m.Items[i]
		if editing && item.ID == m.InputState.Draft.ID {
			rows = append(rows, m.viewInputRow(m.InputState.Draft))
			continue
		}
		rows = append(rows, m.viewItemRow(item, i == m.UIState.Selected()))
	}
	return rows
}

func (m Model) viewItemRow(item models.TodoItem, selected bool) string {
	if selected {
		return m.styles.cursor.Render("> ") +
			m.styles.selected.Render(item.Icon.Glyph()+" "+item.Task)
	}
	return "  " + m.styles.icon.Render(item.Icon.Glyph()) + " " + m.styles.normal.Render(item.Task)
}

// viewInputRow renders the text input in place of a row
func (m Model) viewInputRow(draft models.TodoItem) string {
	return m.styles.cursor.Render("> ") +
		m.styles.editing.Render(draft.Icon.Glyph()) + " " +
		m.Input.View()
}

func (m Model) viewStatusBar() string {
	km := m.Config.KeyMappings

	var hints string
	switch m.UIState.Mode() {
	case state.AddMode:
		hints = fmt.Sprintf("%s save • %s icon • %s cancel", km.Save, km.CycleIcon, km.Cancel)
	case state.EditMode:
		hints = fmt.Sprintf("%s/%s done • %s icon", km.Save, km.Cancel, km.CycleIcon)
	default:
		hints = strings.Join([]string{
			km.AddItem + " add",
			km.EditItem + " edit",
			km.DeleteItem + " delete",
			km.ShowHelp + " help",
			km.Quit + " quit",
		}, " • ")
	}

	return m.styles.mode.Render(m.UIState.Mode().String()) + " " + m.styles.subtle.Render(hints)
}
