package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/coordinator"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/repository"
	"github.com/thenoetrevino/todo/internal/testutil"
	"github.com/thenoetrevino/todo/internal/tui/state"
)

// ============================================================================
// Test Helpers
// ============================================================================

type intent struct {
	op   string
	item models.TodoItem
}

// fakeCoordinator records intents and follows the editing rules of the real one
type fakeCoordinator struct {
	states  chan coordinator.State
	editing *models.TodoItem
	intents []intent
}

func newFakeCoordinator() *fakeCoordinator {
	return &fakeCoordinator{states: make(chan coordinator.State, 1)}
}

func (f *fakeCoordinator) Subscribe(ctx context.Context) <-chan coordinator.State {
	return f.states
}

func (f *fakeCoordinator) Editing() (models.TodoItem, bool) {
	if f.editing == nil {
		return models.TodoItem{}, false
	}
	return *f.editing, true
}

func (f *fakeCoordinator) OnEditItemSelected(item models.TodoItem) {
	f.editing = &item
	f.intents = append(f.intents, intent{"select", item})
}

func (f *fakeCoordinator) OnEditItemChange(item models.TodoItem) {
	f.editing = &item
	f.intents = append(f.intents, intent{"change", item})
}

func (f *fakeCoordinator) OnEditDone() {
	f.intents = append(f.intents, intent{"done", *f.editing})
	f.editing = nil
}

func (f *fakeCoordinator) AddItem(item models.TodoItem) {
	f.intents = append(f.intents, intent{"add", item})
}

func (f *fakeCoordinator) RemoveItem(item models.TodoItem) {
	if f.editing != nil && f.editing.ID == item.ID {
		f.editing = nil
	}
	f.intents = append(f.intents, intent{"remove", item})
}

func (f *fakeCoordinator) last() intent {
	if len(f.intents) == 0 {
		return intent{}
	}
	return f.intents[len(f.intents)-1]
}

// setupTestModel creates a sized model showing items
func setupTestModel(t *testing.T, items ...models.TodoItem) (Model, *fakeCoordinator) {
	t.Helper()
	coord := newFakeCoordinator()
	m := New(context.Background(), coord, config.Default())
	m.UIState.SetWidth(80)
	m.UIState.SetHeight(24)
	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Success(items)}})
	return m, coord
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func press(t *testing.T, m Model, k tea.Key) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyPressMsg(k))
	return next.(Model), cmd
}

func runeKey(r rune) tea.Key {
	return tea.Key{Text: string(r), Code: r}
}

var (
	keyEnter = tea.Key{Code: tea.KeyEnter}
	keyEsc   = tea.Key{Code: tea.KeyEsc}
	keyTab   = tea.Key{Code: tea.KeyTab}
	keyCtrlC = tea.Key{Code: 'c', Mod: tea.ModCtrl}
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, runeKey(r))
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ============================================================================
// State handling
// ============================================================================

func TestStateMsg_SuccessReplacesItems(t *testing.T) {
	m, _ := setupTestModel(t)
	items := []models.TodoItem{models.RandomTodoItem(), models.RandomTodoItem()}

	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Success(items)}})

	if !m.Loaded {
		t.Error("Model should be loaded after a success result")
	}
	if len(m.Items) != 2 || m.Items[1].ID != items[1].ID {
		t.Errorf("Items = %v, want %v", m.Items, items)
	}
}

func TestStateMsg_LoadingBeforeFirstResult(t *testing.T) {
	coord := newFakeCoordinator()
	m := New(context.Background(), coord, config.Default())
	m.UIState.SetWidth(80)

	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Loading()}})

	if m.Loaded {
		t.Error("Loading result should not mark the model loaded")
	}
	if !strings.Contains(m.View().Content, "Loading") {
		t.Error("View should show loading")
	}
}

func TestStateMsg_ErrorKeepsLastGoodList(t *testing.T) {
	item := models.NewTodoItem("Buy milk", models.IconSquare)
	m, _ := setupTestModel(t, item)

	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Failure(errors.New("disk on fire"))}})

	if len(m.Items) != 1 {
		t.Fatalf("Items = %d, want the last good list", len(m.Items))
	}
	view := m.View().Content
	if !strings.Contains(view, whoops) {
		t.Error("View should show the error notice")
	}
	if !strings.Contains(view, "Buy milk") {
		t.Error("View should still show the list")
	}

	// The next success clears the notice
	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Success([]models.TodoItem{item})}})
	if m.NotificationState.HasAny() {
		t.Error("Success should clear the error notice")
	}
}

func TestStateMsg_ListShrinkClampsCursor(t *testing.T) {
	items := []models.TodoItem{models.RandomTodoItem(), models.RandomTodoItem(), models.RandomTodoItem()}
	m, _ := setupTestModel(t, items...)
	m.UIState.SetSelected(2)

	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Success(items[:1])}})

	if m.UIState.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", m.UIState.Selected())
	}
}

func TestStateMsg_RearmsSubscription(t *testing.T) {
	m, coord := setupTestModel(t)

	_, cmd := m.Update(stateMsg{State: coordinator.State{Items: repository.Success(nil)}})
	if cmd == nil {
		t.Fatal("stateMsg should re-arm the subscription")
	}

	item := models.RandomTodoItem()
	coord.states <- coordinator.State{Items: repository.Success([]models.TodoItem{item})}

	msg, ok := cmd().(stateMsg)
	if !ok {
		t.Fatalf("cmd() returned %T, want stateMsg", msg)
	}
	if len(msg.State.Items.Items) != 1 || msg.State.Items.Items[0].ID != item.ID {
		t.Errorf("unexpected state %v", msg.State)
	}
}

func TestSubscriptionClosed_Quits(t *testing.T) {
	m, coord := setupTestModel(t)
	close(coord.states)

	msg := m.waitForState()()
	if _, ok := msg.(subscriptionClosedMsg); !ok {
		t.Fatalf("waitForState() = %T, want subscriptionClosedMsg", msg)
	}

	_, cmd := m.Update(msg)
	if !isQuit(cmd) {
		t.Error("closed subscription should quit")
	}
}

func TestWaitForState_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := New(ctx, newFakeCoordinator(), config.Default())
	cancel()

	if _, ok := m.waitForState()().(subscriptionClosedMsg); !ok {
		t.Error("cancelled context should end the subscription")
	}
}

// ============================================================================
// Normal mode
// ============================================================================

func TestNavigation(t *testing.T) {
	m, _ := setupTestModel(t, models.RandomTodoItem(), models.RandomTodoItem())

	m, _ = press(t, m, runeKey('j'))
	m, _ = press(t, m, runeKey('j'))
	if m.UIState.Selected() != 1 {
		t.Errorf("after j j Selected() = %d, want 1", m.UIState.Selected())
	}

	m, _ = press(t, m, runeKey('k'))
	m, _ = press(t, m, runeKey('k'))
	if m.UIState.Selected() != 0 {
		t.Errorf("after k k Selected() = %d, want 0", m.UIState.Selected())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.Key{runeKey('q'), keyCtrlC} {
		m, _ := setupTestModel(t)
		if _, cmd := press(t, m, k); !isQuit(cmd) {
			t.Errorf("%s should quit", tea.KeyPressMsg(k).String())
		}
	}
}

func TestDeleteRemovesSelectedItem(t *testing.T) {
	a, b := models.RandomTodoItem(), models.RandomTodoItem()
	m, coord := setupTestModel(t, a, b)

	m, _ = press(t, m, runeKey('j'))
	press(t, m, runeKey('d'))

	if got := coord.last(); got.op != "remove" || got.item.ID != b.ID {
		t.Errorf("last intent = %v, want remove %s", got, b.ID)
	}
}

func TestDeleteOnEmptyListDoesNothing(t *testing.T) {
	m, coord := setupTestModel(t)
	press(t, m, runeKey('d'))
	press(t, m, runeKey('e'))

	if len(coord.intents) != 0 {
		t.Errorf("intents = %v, want none", coord.intents)
	}
}

func TestKeypressClearsNotice(t *testing.T) {
	m, _ := setupTestModel(t, models.RandomTodoItem())
	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Failure(errors.New("boom"))}})

	m, _ = press(t, m, runeKey('j'))
	if m.NotificationState.HasAny() {
		t.Error("notice should be dismissed by the next key")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, runeKey('?'))
	if m.UIState.Mode() != state.HelpMode {
		t.Fatalf("Mode() = %v, want HELP", m.UIState.Mode())
	}
	if m.View().Content == "" {
		t.Error("help view should not be empty")
	}

	m, _ = press(t, m, keyEsc)
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NORMAL", m.UIState.Mode())
	}
}

// ============================================================================
// Add mode
// ============================================================================

func TestAddItem(t *testing.T) {
	m, coord := setupTestModel(t)

	m, _ = press(t, m, runeKey('a'))
	if m.UIState.Mode() != state.AddMode {
		t.Fatalf("Mode() = %v, want ADD", m.UIState.Mode())
	}

	m = typeText(t, m, "buy milk")
	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyEnter)

	got := coord.last()
	if got.op != "add" {
		t.Fatalf("last intent = %v, want add", got)
	}
	if got.item.Task != "buy milk" {
		t.Errorf("Task = %q, want %q", got.item.Task, "buy milk")
	}
	if got.item.Icon != models.IconDone {
		t.Errorf("Icon = %v, want done after one tab", got.item.Icon)
	}
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NORMAL", m.UIState.Mode())
	}
}

func TestAddItem_UsesConfiguredIcon(t *testing.T) {
	m, coord := setupTestModel(t)
	m.Config.DefaultIcon = "event"

	m, _ = press(t, m, runeKey('a'))
	m = typeText(t, m, "dentist")
	press(t, m, keyEnter)

	if got := coord.last(); got.item.Icon != models.IconEvent {
		t.Errorf("Icon = %v, want event", got.item.Icon)
	}
}

func TestAddItem_BlankIsRejected(t *testing.T) {
	m, coord := setupTestModel(t)

	m, _ = press(t, m, runeKey('a'))
	m = typeText(t, m, "   ")
	m, _ = press(t, m, keyEnter)

	if len(coord.intents) != 0 {
		t.Errorf("intents = %v, want none", coord.intents)
	}
	if m.UIState.Mode() != state.AddMode {
		t.Errorf("Mode() = %v, want ADD", m.UIState.Mode())
	}
}

func TestAddItem_Cancel(t *testing.T) {
	m, coord := setupTestModel(t)

	m, _ = press(t, m, runeKey('a'))
	m = typeText(t, m, "never mind")
	m, _ = press(t, m, keyEsc)

	if len(coord.intents) != 0 {
		t.Errorf("intents = %v, want none", coord.intents)
	}
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NORMAL", m.UIState.Mode())
	}
	if m.Input.Value() != "" {
		t.Errorf("input not reset: %q", m.Input.Value())
	}
}

func TestAddMode_LettersAreText(t *testing.T) {
	m, _ := setupTestModel(t, models.RandomTodoItem())

	m, _ = press(t, m, runeKey('a'))
	m, cmd := press(t, m, runeKey('q'))

	if isQuit(cmd) {
		t.Fatal("q should type, not quit, while adding")
	}
	if m.Input.Value() != "q" {
		t.Errorf("Value() = %q, want q", m.Input.Value())
	}
}

// ============================================================================
// Edit mode
// ============================================================================

func TestEditItem(t *testing.T) {
	item := models.NewTodoItem("Buy milk", models.IconSquare)
	m, coord := setupTestModel(t, item)

	m, _ = press(t, m, runeKey('e'))
	if m.UIState.Mode() != state.EditMode {
		t.Fatalf("Mode() = %v, want EDIT", m.UIState.Mode())
	}
	if got := coord.last(); got.op != "select" || got.item != item {
		t.Fatalf("last intent = %v, want select", got)
	}

	m = typeText(t, m, "!")
	if got := coord.last(); got.op != "change" || got.item.Task != "Buy milk!" || got.item.ID != item.ID {
		t.Errorf("last intent = %v, want change to Buy milk!", got)
	}

	m, _ = press(t, m, keyTab)
	if got := coord.last(); got.op != "change" || got.item.Icon != models.IconDone {
		t.Errorf("last intent = %v, want icon change", got)
	}

	m, _ = press(t, m, keyEnter)
	got := coord.last()
	if got.op != "done" {
		t.Fatalf("last intent = %v, want done", got)
	}
	want := item.WithTask("Buy milk!").WithIcon(models.IconDone)
	if got.item != want {
		t.Errorf("saved %v, want %v", got.item, want)
	}
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NORMAL", m.UIState.Mode())
	}
}

func TestEditItem_EnterStartsEditing(t *testing.T) {
	item := models.RandomTodoItem()
	m, coord := setupTestModel(t, item)

	m, _ = press(t, m, keyEnter)

	if m.UIState.Mode() != state.EditMode || coord.last().op != "select" {
		t.Errorf("enter should start editing, got mode %v intent %v", m.UIState.Mode(), coord.last())
	}
}

func TestEditItem_EscFinishes(t *testing.T) {
	item := models.RandomTodoItem()
	m, coord := setupTestModel(t, item)

	m, _ = press(t, m, runeKey('e'))
	m, _ = press(t, m, keyEsc)

	if got := coord.last(); got.op != "done" || got.item != item {
		t.Errorf("last intent = %v, want done with the unchanged item", got)
	}
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NORMAL", m.UIState.Mode())
	}
}

func TestEditItem_BlankTaskAllowed(t *testing.T) {
	item := models.NewTodoItem("x", models.IconSquare)
	m, coord := setupTestModel(t, item)

	m, _ = press(t, m, runeKey('e'))
	m, _ = press(t, m, tea.Key{Code: tea.KeyBackspace})
	press(t, m, keyEnter)

	if got := coord.last(); got.op != "done" || got.item.Task != "" {
		t.Errorf("last intent = %v, want done with blank task", got)
	}
}

func TestEditItem_TargetRemovedElsewhere(t *testing.T) {
	item := models.RandomTodoItem()
	m, coord := setupTestModel(t, item)

	m, _ = press(t, m, runeKey('e'))
	coord.RemoveItem(item)
	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Success(nil)}})

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("Mode() = %v, want NORMAL once the edit target is gone", m.UIState.Mode())
	}
}

func TestEditItem_StaleStateKeepsEditing(t *testing.T) {
	item := models.RandomTodoItem()
	m, _ := setupTestModel(t, item)

	m, _ = press(t, m, runeKey('e'))
	// A state published before the selection still says nothing is edited
	m = send(t, m, stateMsg{State: coordinator.State{Items: repository.Success([]models.TodoItem{item})}})

	if m.UIState.Mode() != state.EditMode {
		t.Errorf("Mode() = %v, want EDIT", m.UIState.Mode())
	}
}

// ============================================================================
// View
// ============================================================================

func TestView_WaitsForSize(t *testing.T) {
	m := New(context.Background(), newFakeCoordinator(), config.Default())

	view := m.View()
	if view.Content != "Loading..." {
		t.Errorf("Content = %q, want Loading...", view.Content)
	}
	if !view.AltScreen {
		t.Error("View should use the alternate screen")
	}
}

func TestView_ShowsItems(t *testing.T) {
	m, _ := setupTestModel(t,
		models.NewTodoItem("Buy milk", models.IconSquare),
		models.NewTodoItem("Call mom", models.IconDone),
	)

	view := m.View().Content
	for _, want := range []string{"To-do (2)", "Buy milk", "Call mom", models.IconDone.Glyph()} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestView_EmptyList(t *testing.T) {
	m, _ := setupTestModel(t)

	if !strings.Contains(m.View().Content, "Nothing to do") {
		t.Error("empty list should say so")
	}
}

func TestView_StatusBarShowsMode(t *testing.T) {
	m, _ := setupTestModel(t)
	m, _ = press(t, m, runeKey('a'))

	if !strings.Contains(m.View().Content, "ADD") {
		t.Error("status bar should show ADD mode")
	}
}

// ============================================================================
// Full stack
// ============================================================================

// pump feeds coordinator states into the model until cond holds
func pump(t *testing.T, m Model, cond func(Model) bool) Model {
	t.Helper()
	for i := 0; i < 100 && !cond(m); i++ {
		msg := m.waitForState()()
		if _, ok := msg.(subscriptionClosedMsg); ok {
			t.Fatal("subscription closed before condition held")
		}
		m = send(t, m, msg)
	}
	if !cond(m) {
		t.Fatal("condition never held")
	}
	return m
}

func TestModel_WithCoordinator(t *testing.T) {
	_, store := testutil.SetupTestStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	coord := coordinator.New(ctx, repository.New(store))
	t.Cleanup(coord.Close)

	m := New(ctx, coord, config.Default())
	m.UIState.SetWidth(80)
	m.UIState.SetHeight(24)
	m = pump(t, m, func(m Model) bool { return m.Loaded })

	m, _ = press(t, m, runeKey('a'))
	m = typeText(t, m, "water plants")
	m, _ = press(t, m, keyEnter)
	m = pump(t, m, func(m Model) bool { return len(m.Items) == 1 })

	if m.Items[0].Task != "water plants" {
		t.Errorf("Task = %q, want water plants", m.Items[0].Task)
	}

	m, _ = press(t, m, runeKey('e'))
	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyEnter)
	m = pump(t, m, func(m Model) bool { return len(m.Items) == 1 && m.Items[0].Icon == models.IconDone })

	m, _ = press(t, m, runeKey('d'))
	pump(t, m, func(m Model) bool { return len(m.Items) == 0 })
}
