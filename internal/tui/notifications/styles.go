package notifications

import "github.com/thenoetrevino/todo/internal/tui/theme"

type style struct {
	icon       string
	foreground string
	background string
}

func (s Severity) style() style {
	if s == Error {
		return style{
			icon:       "✕",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	}
	return style{
		icon:       "🔔",
		foreground: theme.Normal,
		background: theme.Accent,
	}
}
