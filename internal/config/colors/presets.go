package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		SelectedFg: "#FFFFFF",
		SelectedBg: "#3A3A3A",
		Editing:    "#5F87D7",
		Icon:       "#5FD75F",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		SelectedFg: "#000000",
		SelectedBg: "#FFFFFF",
		Editing:    "#FFFFFF",
		Icon:       "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		ErrorFg: "#FFFFFF",
		ErrorBg: "#000000",
	}
}
