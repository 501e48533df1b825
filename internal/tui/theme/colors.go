package theme

import "github.com/thenoetrevino/todo/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     string
	SelectedFg string
	SelectedBg string
	Editing    string
	Icon       string
	Title      string
	Subtle     string
	Normal     string
	ErrorFg    string
	ErrorBg    string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	SelectedFg = colors.SelectedFg
	SelectedBg = colors.SelectedBg
	Editing = colors.Editing
	Icon = colors.Icon
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
