package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/tui/theme"
)

// styles holds the lipgloss styles for the list, built from the theme
type styles struct {
	title    lipgloss.Style
	subtle   lipgloss.Style
	normal   lipgloss.Style
	icon     lipgloss.Style
	selected lipgloss.Style
	editing  lipgloss.Style
	cursor   lipgloss.Style
	mode     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)),
		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Normal)),
		icon: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Icon)),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SelectedFg)).
			Background(lipgloss.Color(theme.SelectedBg)),
		editing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Editing)).
			Bold(true),
		cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true),
		mode: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SelectedFg)).
			Background(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
	}
}
