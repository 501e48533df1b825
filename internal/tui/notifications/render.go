package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	// Icon + message on single line
	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	if n.Level == state.LevelError {
		return RenderInline(Error, n.Message)
	}
	return RenderInline(Info, n.Message)
}
