package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	AddMode                // Typing a new item
	EditMode               // Editing the selected item in place
	HelpMode               // Displaying help screen
)

// String returns the mode name shown in the status line
func (m Mode) String() string {
	switch m {
	case AddMode:
		return "ADD"
	case EditMode:
		return "EDIT"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes the cursor, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selected is the index of the item under the cursor
	selected int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Selected returns the index of the item under the cursor.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected moves the cursor to index. Negative values are clamped to 0.
func (s *UIState) SetSelected(index int) {
	s.selected = max(index, 0)
}

// MoveDown moves the cursor one row down, stopping at the last of count items.
func (s *UIState) MoveDown(count int) {
	if s.selected < count-1 {
		s.selected++
	}
}

// MoveUp moves the cursor one row up, stopping at the first item.
func (s *UIState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// ClampSelection keeps the cursor inside a list of count items.
// Called whenever the list shrinks underneath the cursor.
func (s *UIState) ClampSelection(count int) {
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// VisibleRows returns how many list rows fit between the header and footer.
// Always at least 1.
func (s *UIState) VisibleRows() int {
	const chrome = 6 // title, blank line, input, notice, footer, margin
	return max(s.height-chrome, 1)
}

// ScrollOffset returns the index of the first visible row so the cursor
// stays on screen.
func (s *UIState) ScrollOffset() int {
	rows := s.VisibleRows()
	if s.selected < rows {
		return 0
	}
	return s.selected - rows + 1
}
