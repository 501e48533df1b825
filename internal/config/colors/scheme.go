package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" toml:"preset"`

	// Primary accent color (used for selections and titles)
	Accent string `yaml:"accent" toml:"accent"`

	// Item list
	SelectedFg string `yaml:"selected_fg" toml:"selected_fg"`
	SelectedBg string `yaml:"selected_bg" toml:"selected_bg"`
	Editing    string `yaml:"editing" toml:"editing"` // Item under edit
	Icon       string `yaml:"icon" toml:"icon"`

	// Text colors
	Title  string `yaml:"title" toml:"title"`
	Subtle string `yaml:"subtle" toml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal" toml:"normal"`

	// Notification colors (foreground/background pairs)
	ErrorFg string `yaml:"error_fg" toml:"error_fg"`
	ErrorBg string `yaml:"error_bg" toml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// MergeFrom copies every non-empty color from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.Preset, other.Preset)
	set(&c.Accent, other.Accent)
	set(&c.SelectedFg, other.SelectedFg)
	set(&c.SelectedBg, other.SelectedBg)
	set(&c.Editing, other.Editing)
	set(&c.Icon, other.Icon)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	custom := *c
	*c = *GetPreset(c.Preset)
	c.MergeFrom(custom)
}
