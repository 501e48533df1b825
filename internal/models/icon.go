package models

import (
	"fmt"
	"strings"
)

// Icon is the category glyph shown next to a todo item
type Icon int

const (
	IconSquare Icon = iota
	IconDone
	IconEvent
	IconPrivacy
	IconTrash
)

// DefaultIcon is used for freshly added items
const DefaultIcon = IconSquare

// Icons lists every icon in display order
var Icons = []Icon{IconSquare, IconDone, IconEvent, IconPrivacy, IconTrash}

// iconTags is the persisted lookup table. These strings are stored in the
// database and must never change.
var iconTags = map[Icon]string{
	IconSquare:  "Filled.CropSquare",
	IconDone:    "Filled.Done",
	IconEvent:   "Filled.Event",
	IconPrivacy: "Filled.PrivacyTip",
	IconTrash:   "Filled.RestoreFromTrash",
}

var iconNames = map[Icon]string{
	IconSquare:  "square",
	IconDone:    "done",
	IconEvent:   "event",
	IconPrivacy: "privacy",
	IconTrash:   "trash",
}

var iconGlyphs = map[Icon]string{
	IconSquare:  "□",
	IconDone:    "✓",
	IconEvent:   "◷",
	IconPrivacy: "⛨",
	IconTrash:   "♻",
}

// Glyph returns a single-cell symbol for terminal display
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return "?"
}

// String returns the human name of the icon (used by flags and config)
func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return fmt.Sprintf("icon(%d)", int(i))
}

// Tag returns the persisted tag for the icon
func (i Icon) Tag() string {
	return iconTags[i]
}

// Valid reports whether i is one of the five known icons
func (i Icon) Valid() bool {
	_, ok := iconTags[i]
	return ok
}

// Next returns the icon after i, wrapping around
func (i Icon) Next() Icon {
	return Icons[(int(i)+1)%len(Icons)]
}

// ParseIconTag decodes a persisted tag.
// Any tag outside the lookup table yields ErrUnknownIconTag.
func ParseIconTag(tag string) (Icon, error) {
	for icon, t := range iconTags {
		if t == tag {
			return icon, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIconTag, tag)
}

// ParseIcon maps a human icon name (case-insensitive) to its Icon
func ParseIcon(name string) (Icon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for icon, n := range iconNames {
		if n == name {
			return icon, nil
		}
	}
	return 0, fmt.Errorf("%w '%s' (must be: square, done, event, privacy, trash)", ErrUnknownIcon, name)
}

// MarshalText encodes the icon by its human name
func (i Icon) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIcon, int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText decodes a human icon name
func (i *Icon) UnmarshalText(text []byte) error {
	icon, err := ParseIcon(string(text))
	if err != nil {
		return err
	}
	*i = icon
	return nil
}
