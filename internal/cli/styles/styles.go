package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style // For ids and empty-list hints
	IconStyle     lipgloss.Style
	ValueStyle    lipgloss.Style // For task text

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	IconStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Icon))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// RenderItem renders an item as "<glyph> task  (id)"
func RenderItem(item models.TodoItem) string {
	return IconStyle.Render(item.Icon.Glyph()) + " " +
		ValueStyle.Render(item.Task) + "  " +
		SubtitleStyle.Render("("+item.ID.String()+")")
}
