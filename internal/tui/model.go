// Package tui runs the todo editor in the terminal on Bubble Tea. It owns
// the app.State, turns key presses into view events, and fulfils focus
// requests after the render that mounts the edit input.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/view"
)

type focusArea int

const (
	focusHeader focusArea = iota
	focusList
	focusEdit
)

func (f focusArea) String() string {
	switch f {
	case focusList:
		return "list"
	case focusEdit:
		return "edit"
	default:
		return "header"
	}
}

// focusMsg carries a focus request back into Update once the Editing
// state has been rendered.
type focusMsg app.FocusRequest

// Options configure a Model.
type Options struct {
	Theme  string
	Commit app.CommitPolicy
	Logger *log.Logger
	// State seeds the model; the zero value starts empty.
	State *app.State
}

// Model is the Bubble Tea model.
type Model struct {
	state app.State
	tree  view.Node

	focus focusArea
	// list pages the rendered rows; its index is the row cursor.
	list list.Model

	newInput  textinput.Model
	editInput textinput.Model
	// editFocus is the handle the edit input was last focused for.
	editFocus app.FocusHandle

	keys   keyMap
	help   help.Model
	styles styles
	logger *log.Logger

	width, height int
	quitting      bool
}

// New builds a Model ready to hand to tea.NewProgram.
func New(opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	state := app.NewState(app.WithCommitPolicy(opt.Commit))
	if opt.State != nil {
		state = *opt.State
	}

	m := Model{
		state:  state,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(opt.Theme),
		logger: logger,
		width:  80,
		height: 24,
	}
	m.help.Styles.ShortKey = m.styles.accent
	m.help.Styles.ShortDesc = m.styles.help

	m.newInput = textinput.New()
	m.newInput.Prompt = "> "
	m.newInput.Placeholder = "What needs to be done?"
	m.newInput.CharLimit = 200
	m.newInput.Focus()

	m.editInput = textinput.New()
	m.editInput.Prompt = ""

	m.list = list.New(nil, rowDelegate{}, 0, 0)
	m.list.SetShowTitle(false)
	m.list.SetShowStatusBar(false)
	m.list.SetShowHelp(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowPagination(true)
	m.list.DisableQuitKeybindings()
	m.list.Styles.PaginationStyle = m.styles.help

	m.sync()
	return m
}

// State returns the current editor state.
func (m Model) State() app.State { return m.state }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) mode() focusArea {
	if _, ok := m.state.Session(); ok {
		return focusEdit
	}
	return m.focus
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.newInput.Width = max(m.width-12, 10)
		m.editInput.Width = max(m.width-16, 10)
		m.help.Width = max(m.width-m.styles.border.GetHorizontalFrameSize(), 10)
		m.layout()
		return m, nil

	case focusMsg:
		cmd := m.placeFocus(app.FocusRequest(msg))
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Force) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode() {
		case focusEdit:
			return m.updateEdit(msg)
		case focusList:
			return m.updateList(msg)
		default:
			return m.updateHeader(msg)
		}
	}

	// Cursor blink and friends.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.newInput, cmd = m.newInput.Update(msg)
	cmds = append(cmds, cmd)
	m.editInput, cmd = m.editInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) updateHeader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input, _ := view.Find(m.tree, view.ByClass(view.ClassNewTodo))
	switch {
	case key.Matches(msg, m.keys.Create):
		cmd := m.fire(input, view.Event{Kind: view.EventKeyDown, Key: view.KeyEnter})
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		cmd := m.clickClear()
		return m, cmd
	case key.Matches(msg, m.keys.Switch), msg.Type == tea.KeyDown:
		if m.state.Len() > 0 {
			m.focusList()
		}
		return m, nil
	}
	cmd := m.typeInto(&m.newInput, input, msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := view.Rows(m.tree)
	if len(rows) == 0 {
		cmd := m.focusHeader()
		return m, cmd
	}
	row := rows[m.list.Index()]
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.list.Index() == 0 {
			cmd := m.focusHeader()
			return m, cmd
		}
		m.list.CursorUp()
	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
	case key.Matches(msg, m.keys.Toggle):
		cmd := m.fire(child(row, view.ByClass(view.ClassToggle)), view.Event{Kind: view.EventChange})
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		cmd := m.fire(child(row, isLabel), view.Event{Kind: view.EventDoubleClick})
		return m, cmd
	case key.Matches(msg, m.keys.Remove):
		cmd := m.fire(child(row, view.ByClass(view.ClassDestroy)), view.Event{Kind: view.EventClick})
		return m, cmd
	case key.Matches(msg, m.keys.Clear):
		cmd := m.clickClear()
		return m, cmd
	case key.Matches(msg, m.keys.Switch), key.Matches(msg, m.keys.Cancel):
		cmd := m.focusHeader()
		return m, cmd
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sess, _ := m.state.Session()
	edit, _ := view.FindFocus(m.tree, sess.Focus)
	switch {
	case key.Matches(msg, m.keys.Commit):
		cmd := m.fire(edit, view.Event{Kind: view.EventKeyDown, Key: view.KeyEnter})
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		cmd := m.fire(edit, view.Event{Kind: view.EventKeyDown, Key: view.KeyEscape})
		return m, cmd
	case key.Matches(msg, m.keys.Switch):
		blur := m.fire(edit, view.Event{Kind: view.EventBlur})
		focus := m.focusHeader()
		return m, tea.Batch(blur, focus)
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		cmd := m.fire(edit, view.Event{Kind: view.EventBlur})
		if msg.Type == tea.KeyUp {
			m.list.CursorUp()
		} else {
			m.list.CursorDown()
		}
		return m, cmd
	}
	// Until the focusMsg for this session arrives the edit input is
	// blurred and textinput ignores keys, so anything typed in that one
	// message window is dropped.
	cmd := m.typeInto(&m.editInput, edit, msg)
	return m, cmd
}

// typeInto feeds msg to a text input and reports a changed value to the
// node as an input event.
func (m *Model) typeInto(input *textinput.Model, node view.Node, msg tea.KeyMsg) tea.Cmd {
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, m.fire(node, view.Event{Kind: view.EventInput, Text: input.Value()}))
}

func (m *Model) clickClear() tea.Cmd {
	btn, _ := view.Find(m.tree, view.ByClass(view.ClassClear))
	return m.fire(btn, view.Event{Kind: view.EventClick})
}

// fire dispatches whatever message node binds to ev.
func (m *Model) fire(node view.Node, ev view.Event) tea.Cmd {
	msg, ok := node.Handle(ev)
	if !ok {
		return nil
	}
	return m.dispatch(msg)
}

// dispatch runs msg through the transition function and re-renders.
func (m *Model) dispatch(msg app.Msg) tea.Cmd {
	next, req := app.Transition(m.state, msg)
	m.state = next
	m.logger.Debug("dispatch", "msg", app.Describe(msg), "todos", next.Len(), "mode", m.mode())
	m.sync()
	if req == nil {
		return nil
	}
	return afterPaint(*req)
}

// afterPaint delivers req back to Update. Bubble Tea renders the model
// before it handles the next message, so the edit input exists by then.
func afterPaint(req app.FocusRequest) tea.Cmd {
	return func() tea.Msg { return focusMsg(req) }
}

// placeFocus focuses the edit input for req. A request whose input is no
// longer in the tree is dropped, and a panic is logged rather than
// propagated.
func (m *Model) placeFocus(req app.FocusRequest) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("focus placement failed", "handle", req.Handle, "err", r)
			cmd = nil
		}
	}()

	node, ok := view.FindFocus(m.tree, req.Handle)
	if !ok {
		m.logger.Debug("focus target gone", "handle", req.Handle)
		return nil
	}
	m.newInput.Blur()
	m.editInput.SetValue(node.Value)
	m.editInput.SetCursor(app.RuneOffset(node.Value, req.Caret))
	m.editFocus = req.Handle
	return m.editInput.Focus()
}

func (m *Model) focusHeader() tea.Cmd {
	m.focus = focusHeader
	return m.newInput.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.newInput.Blur()
}

// sync re-renders the tree and brings the text inputs and the cursor in
// line with it.
func (m *Model) sync() {
	m.tree = view.Render(m.state)

	if v := m.state.PendingNewTitle(); m.newInput.Value() != v {
		m.newInput.SetValue(v)
	}

	rows := view.Rows(m.tree)
	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = rowItem{row}
	}
	cursor := m.list.Index()
	m.list.SetItems(items)
	m.list.Select(min(cursor, max(len(rows)-1, 0)))

	if sess, ok := m.state.Session(); ok {
		if m.editInput.Value() != sess.WorkingTitle {
			m.editInput.SetValue(sess.WorkingTitle)
		}
		if m.editFocus != sess.Focus && m.editInput.Focused() {
			m.editInput.Blur()
		}
		for i, t := range m.state.Todos() {
			if t.ID == sess.ID {
				m.list.Select(i)
				break
			}
		}
	} else {
		m.editInput.Blur()
		m.editInput.SetValue("")
		m.editFocus = 0
	}

	if len(rows) == 0 && m.focus == focusList {
		m.focus = focusHeader
		m.newInput.Focus()
	}
	m.layout()
}

// layout gives the list whatever height the border, header and help
// line leave over.
func (m *Model) layout() {
	var chrome []string
	if header, ok := view.Find(m.tree, isHeader); ok {
		chrome = append(chrome, m.paintHeader(header)...)
	}
	chrome = append(chrome, "", "", m.help.View(m.keys.help(m.mode())))
	used := lipgloss.Height(strings.Join(chrome, "\n")) + m.styles.border.GetVerticalFrameSize()
	m.list.SetSize(max(m.width-m.styles.border.GetHorizontalFrameSize(), 10), max(m.height-used, 1))
}

func child(row view.Node, pred func(view.Node) bool) view.Node {
	n, _ := view.Find(row, pred)
	return n
}

func isLabel(n view.Node) bool { return n.Kind == view.KindLabel }

func isHeader(n view.Node) bool { return n.Kind == view.KindHeader }
