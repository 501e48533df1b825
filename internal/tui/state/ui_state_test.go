package state

import (
	"testing"

	"github.com/thenoetrevino/todo/internal/models"
)

// TestMoveDown_AtBoundary ensures the cursor stops on the last item.
func TestMoveDown_AtBoundary(t *testing.T) {
	s := NewUIState()

	s.MoveDown(2)
	s.MoveDown(2)
	s.MoveDown(2)

	if got := s.Selected(); got != 1 {
		t.Errorf("Selected() = %d, want 1", got)
	}
}

// TestMoveUp_AtBoundary ensures moving up at index 0 is a no-op.
func TestMoveUp_AtBoundary(t *testing.T) {
	s := NewUIState()
	s.MoveUp()

	if got := s.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
}

// TestMoveDown_EmptyList ensures an empty list keeps the cursor at 0.
func TestMoveDown_EmptyList(t *testing.T) {
	s := NewUIState()
	s.MoveDown(0)

	if got := s.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
}

func TestClampSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		count    int
		want     int
	}{
		{"inside", 2, 5, 2},
		{"past end", 4, 2, 1},
		{"empty list", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetSelected(tt.selected)
			s.ClampSelection(tt.count)
			if got := s.Selected(); got != tt.want {
				t.Errorf("Selected() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetSelected_Negative(t *testing.T) {
	s := NewUIState()
	s.SetSelected(-3)

	if got := s.Selected(); got != 0 {
		t.Errorf("Selected() = %d, want 0", got)
	}
}

// TestVisibleRows_TinyTerminal ensures at least one row is always shown.
func TestVisibleRows_TinyTerminal(t *testing.T) {
	s := NewUIState()
	s.SetHeight(2)

	if got := s.VisibleRows(); got != 1 {
		t.Errorf("VisibleRows() = %d, want 1", got)
	}
}

func TestScrollOffset_FollowsCursor(t *testing.T) {
	s := NewUIState()
	s.SetHeight(10) // 4 visible rows

	s.SetSelected(2)
	if got := s.ScrollOffset(); got != 0 {
		t.Errorf("ScrollOffset() = %d, want 0", got)
	}

	s.SetSelected(7)
	if got := s.ScrollOffset(); got != 4 {
		t.Errorf("ScrollOffset() = %d, want 4", got)
	}
}

func TestModeString(t *testing.T) {
	if NormalMode.String() != "NORMAL" || EditMode.String() != "EDIT" {
		t.Errorf("unexpected mode names: %s %s", NormalMode, EditMode)
	}
}

func TestInputState_Changes(t *testing.T) {
	s := NewInputState()
	item := models.NewTodoItem("Buy milk", models.IconSquare)
	s.Start(item)

	if s.HasInputChanges() {
		t.Error("fresh draft should have no changes")
	}
	if s.SetTask("Buy milk") {
		t.Error("SetTask with the same task should report no change")
	}
	if !s.SetTask("Buy oat milk") {
		t.Error("SetTask with a new task should report a change")
	}

	s.CycleIcon()
	if s.Draft.Icon != models.IconDone {
		t.Errorf("Draft.Icon = %v, want done", s.Draft.Icon)
	}
	if s.Draft.ID != item.ID {
		t.Error("draft must keep the item id")
	}
	if !s.HasInputChanges() {
		t.Error("edited draft should have changes")
	}
}

func TestInputState_IsEmpty(t *testing.T) {
	s := NewInputState()
	s.Start(models.NewTodoItem("   ", models.IconSquare))
	if !s.IsEmpty() {
		t.Error("whitespace task should count as empty")
	}

	s.SetTask("x")
	if s.IsEmpty() {
		t.Error("non-blank task should not be empty")
	}
}

func TestNotificationState_AddDeduplicates(t *testing.T) {
	s := NewNotificationState()
	s.Add(LevelError, "Whoops")
	s.Add(LevelError, "Whoops")
	s.Add(LevelInfo, "Saved")

	if got := len(s.All()); got != 2 {
		t.Fatalf("len(All()) = %d, want 2", got)
	}

	s.ClearLevel(LevelError)
	if got := s.All(); len(got) != 1 || got[0].Level != LevelInfo {
		t.Errorf("ClearLevel left %v", got)
	}

	s.Clear()
	if s.HasAny() {
		t.Error("Clear should remove everything")
	}
}
