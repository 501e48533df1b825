package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item" toml:"add_item"`
	EditItem   string `yaml:"edit_item" toml:"edit_item"`
	DeleteItem string `yaml:"delete_item" toml:"delete_item"`

	// Forms
	CycleIcon string `yaml:"cycle_icon" toml:"cycle_icon"`
	Save      string `yaml:"save" toml:"save"`
	Cancel    string `yaml:"cancel" toml:"cancel"`

	// Navigation
	PrevItem string `yaml:"prev_item" toml:"prev_item"`
	NextItem string `yaml:"next_item" toml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help" toml:"show_help"`
	Quit     string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddItem:    "a",
		EditItem:   "e",
		DeleteItem: "d",

		CycleIcon: "tab",
		Save:      "enter",
		Cancel:    "esc",

		PrevItem: "k",
		NextItem: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&k.AddItem, defaults.AddItem)
	fill(&k.EditItem, defaults.EditItem)
	fill(&k.DeleteItem, defaults.DeleteItem)
	fill(&k.CycleIcon, defaults.CycleIcon)
	fill(&k.Save, defaults.Save)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
