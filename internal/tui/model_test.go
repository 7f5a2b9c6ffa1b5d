package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/view"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	ctrlX = tea.KeyMsg{Type: tea.KeyCtrlX}
)

// press sends msg and returns the updated model with the command it
// produced.
func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// typeText types s one key at a time.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

// addTodos creates todos through the header input.
func addTodos(t *testing.T, m Model, titles ...string) Model {
	t.Helper()
	for _, title := range titles {
		m = typeText(t, m, title)
		m, _ = press(t, m, enter)
	}
	return m
}

// runFocus executes a command and feeds any focus message back in, the
// way Bubble Tea would after the next render.
func runFocus(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	fm, ok := msg.(focusMsg)
	require.True(t, ok, "expected focusMsg, got %T", msg)
	m, _ = press(t, m, fm)
	return m
}

func titles(m Model) []string {
	var out []string
	for _, td := range m.State().Todos() {
		out = append(out, td.Title)
	}
	return out
}

func TestHeader_TypingAndEnterCreates(t *testing.T) {
	m := New(Options{})
	m = typeText(t, m, "Buy milk")
	require.Equal(t, "Buy milk", m.State().PendingNewTitle())

	m, _ = press(t, m, enter)
	require.Equal(t, []string{"Buy milk"}, titles(m))
	require.Empty(t, m.State().PendingNewTitle())
	require.Empty(t, m.newInput.Value())
}

func TestHeader_BlankIsNotCreated(t *testing.T) {
	m := New(Options{})
	m = typeText(t, m, "   ")
	m, _ = press(t, m, enter)
	require.Zero(t, m.State().Len())
	require.Equal(t, "   ", m.newInput.Value())
}

func TestList_ToggleAndRemove(t *testing.T) {
	m := addTodos(t, New(Options{}), "a", "b")
	m, _ = press(t, m, tab)
	require.Equal(t, focusList, m.mode())

	m, _ = press(t, m, down)
	m, _ = press(t, m, space)
	todos := m.State().Todos()
	require.False(t, todos[0].Complete)
	require.True(t, todos[1].Complete)

	m, _ = press(t, m, runes("d"))
	require.Equal(t, []string{"a"}, titles(m))
	require.Equal(t, 0, m.list.Index())
}

func TestList_RemovingLastFallsBackToHeader(t *testing.T) {
	m := addTodos(t, New(Options{}), "a")
	m, _ = press(t, m, tab)
	m, _ = press(t, m, runes("d"))
	require.Zero(t, m.State().Len())
	require.Equal(t, focusHeader, m.mode())
	require.True(t, m.newInput.Focused())
}

func TestEdit_FocusArrivesAfterRender(t *testing.T) {
	m := addTodos(t, New(Options{}), "héllo")
	m, _ = press(t, m, tab)
	m, cmd := press(t, m, enter)

	sess, ok := m.State().Session()
	require.True(t, ok)
	require.Equal(t, focusEdit, m.mode())
	require.False(t, m.editInput.Focused(), "focus is deferred until after render")
	require.Contains(t, m.View(), "héllo")

	m = runFocus(t, m, cmd)
	require.True(t, m.editInput.Focused())
	require.False(t, m.newInput.Focused())
	require.Equal(t, sess.Focus, m.editFocus)
	require.Equal(t, 5, m.editInput.Position())
}

func TestEdit_TypeAndCommit(t *testing.T) {
	m := addTodos(t, New(Options{}), "A")
	m, _ = press(t, m, tab)
	m, cmd := press(t, m, runes("e"))
	m = runFocus(t, m, cmd)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "B")
	sess, _ := m.State().Session()
	require.Equal(t, "B", sess.WorkingTitle)

	m, _ = press(t, m, enter)
	require.Equal(t, []string{"B"}, titles(m))
	_, editing := m.State().Session()
	require.False(t, editing)
	require.False(t, m.editInput.Focused())
	require.Equal(t, focusList, m.mode())
}

func TestEdit_EscapeDiscards(t *testing.T) {
	m := addTodos(t, New(Options{}), "A")
	m, _ = press(t, m, tab)
	m, cmd := press(t, m, enter)
	m = runFocus(t, m, cmd)
	m = typeText(t, m, "xyz")

	m, _ = press(t, m, esc)
	require.Equal(t, []string{"A"}, titles(m))
	_, editing := m.State().Session()
	require.False(t, editing)
}

func TestEdit_TabBlurCommits(t *testing.T) {
	m := addTodos(t, New(Options{}), "A")
	m, _ = press(t, m, tab)
	m, cmd := press(t, m, enter)
	m = runFocus(t, m, cmd)
	m = typeText(t, m, "!")

	m, _ = press(t, m, tab)
	require.Equal(t, []string{"A!"}, titles(m))
	require.Equal(t, focusHeader, m.mode())
	require.True(t, m.newInput.Focused())
}

func TestEdit_StaleFocusIsSkipped(t *testing.T) {
	m := addTodos(t, New(Options{}), "a", "b")
	m, _ = press(t, m, tab)

	m, first := press(t, m, enter)
	// Move to the second row; leaving the row blurs and commits the first.
	m, _ = press(t, m, down)
	m, second := press(t, m, enter)

	stale := first().(focusMsg)
	m, cmd := press(t, m, stale)
	require.Nil(t, cmd)
	require.False(t, m.editInput.Focused())

	m = runFocus(t, m, second)
	sess, _ := m.State().Session()
	require.Equal(t, m.State().Todos()[1].ID, sess.ID)
	require.True(t, m.editInput.Focused())
}

func TestEdit_FocusAfterSessionClosedIsSkipped(t *testing.T) {
	m := addTodos(t, New(Options{}), "a")
	m, _ = press(t, m, tab)
	m, cmd := press(t, m, enter)
	m, _ = press(t, m, esc)

	msg := cmd()
	m, next := press(t, m, msg)
	require.Nil(t, next)
	require.False(t, m.editInput.Focused())
}

func TestClearAll_FromList(t *testing.T) {
	m := addTodos(t, New(Options{}), "a", "b")
	m, _ = press(t, m, tab)
	m, _ = press(t, m, ctrlX)
	require.Zero(t, m.State().Len())
	require.Equal(t, focusHeader, m.mode())
	require.Contains(t, m.View(), "no items")
}

func TestView_ListsRowsInOrder(t *testing.T) {
	m := addTodos(t, New(Options{Theme: "mono"}), "first", "second")
	out := m.View()
	require.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	require.Contains(t, out, "[ ]")
	require.Len(t, view.Rows(m.tree), 2)
}

func TestUpFromFirstRowReturnsToHeader(t *testing.T) {
	m := addTodos(t, New(Options{}), "a")
	m, _ = press(t, m, tab)
	m, _ = press(t, m, up)
	require.Equal(t, focusHeader, m.mode())
}

func TestQuit(t *testing.T) {
	m := New(Options{})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Empty(t, m.View())
}

func TestNew_SeedsState(t *testing.T) {
	s := app.NewState()
	s, _ = app.Apply(s, app.SetNewTitle{Text: "seeded"}, app.CreateFromPending{})
	m := New(Options{State: &s})
	require.Equal(t, []string{"seeded"}, titles(m))
}

func TestEdit_KeysBeforeFocusAreDropped(t *testing.T) {
	m := addTodos(t, New(Options{}), "A")
	m, _ = press(t, m, tab)
	m, cmd := press(t, m, enter)

	// The edit input only takes keys once the focus request lands.
	m = typeText(t, m, "Z")
	sess, _ := m.State().Session()
	require.Equal(t, "A", sess.WorkingTitle)

	m = runFocus(t, m, cmd)
	m = typeText(t, m, "Z")
	sess, _ = m.State().Session()
	require.Equal(t, "AZ", sess.WorkingTitle)
}

func TestView_FitsTerminalHeight(t *testing.T) {
	m := New(Options{Theme: "mono"})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	for i := 1; i <= 40; i++ {
		m = addTodos(t, m, fmt.Sprintf("item %02d", i))
	}

	out := m.View()
	require.LessOrEqual(t, len(strings.Split(out, "\n")), 24)
	require.Contains(t, out, "todos")
	require.Contains(t, out, "item 01")
	require.NotContains(t, out, "item 40")

	m, _ = press(t, m, tab)
	for range 25 {
		m, _ = press(t, m, down)
	}
	require.Equal(t, 25, m.list.Index())
	out = m.View()
	require.LessOrEqual(t, len(strings.Split(out, "\n")), 24)
	require.Contains(t, out, "todos")
	require.Contains(t, out, "item 26")
	require.NotContains(t, out, "item 01")
}

func TestView_ResizeKeepsCursor(t *testing.T) {
	m := New(Options{})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 14})
	for i := 1; i <= 12; i++ {
		m = addTodos(t, m, fmt.Sprintf("item %02d", i))
	}
	m, _ = press(t, m, tab)
	for range 10 {
		m, _ = press(t, m, down)
	}
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	require.Equal(t, 10, m.list.Index())
	require.Contains(t, m.View(), "item 11")
}
