package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/view"
)

// rowItem adapts a rendered row to the list.
type rowItem struct{ node view.Node }

func (r rowItem) FilterValue() string {
	if label, ok := view.Find(r.node, isLabel); ok {
		return label.Text
	}
	return ""
}

// rowDelegate paints one row per line through paint, which View binds to
// the model being drawn.
type rowDelegate struct {
	paint func(row view.Node, selected bool) string
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(rowItem)
	if !ok || d.paint == nil {
		return
	}
	fmt.Fprint(w, d.paint(row.node, index == m.Index()))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	if header, ok := view.Find(m.tree, isHeader); ok {
		lines = append(lines, m.paintHeader(header)...)
	}
	lines = append(lines, "")

	if len(view.Rows(m.tree)) == 0 {
		lines = append(lines, m.styles.muted.Render("no items"))
	} else {
		l := m.list
		l.SetDelegate(rowDelegate{paint: m.paintRow})
		lines = append(lines, l.View())
	}

	lines = append(lines, "", m.help.View(m.keys.help(m.mode())))
	return m.styles.border.Render(strings.Join(lines, "\n"))
}

func (m Model) paintHeader(header view.Node) []string {
	var out []string
	for _, n := range header.Children {
		switch {
		case n.Kind == view.KindHeading:
			done, pending := m.state.Stats()
			out = append(out, fmt.Sprintf("%s   %s %d  %s %d  %s %d",
				m.styles.title.Render(n.Text),
				m.styles.success.Render("✔"), done,
				m.styles.pending.Render("•"), pending,
				m.styles.accent.Render("Total"), done+pending,
			))
		case n.HasClass(view.ClassNewTodo):
			out = append(out, m.styles.input.Render(m.newInput.View()))
		case n.HasClass(view.ClassClear):
			out = append(out, m.styles.muted.Render(fmt.Sprintf("[%s] %s", m.keys.Clear.Help().Key, n.Text)))
		}
	}
	return out
}

func (m Model) paintRow(row view.Node, selected bool) string {
	cursor := selected && m.mode() != focusHeader
	prefix := "  "
	if cursor {
		prefix = m.styles.selected.Render("> ")
	}

	parts := []string{prefix}
	for _, n := range row.Children {
		switch {
		case n.Kind == view.KindCheckbox:
			if n.Checked {
				parts = append(parts, m.styles.success.Render(m.styles.boxChecked))
			} else {
				parts = append(parts, m.styles.muted.Render(m.styles.boxUnchecked))
			}
		case n.Kind == view.KindLabel:
			text := n.Text
			if row.HasClass(view.ClassCompleted) {
				text = m.styles.done.Render(text)
			}
			parts = append(parts, text)
		case n.Kind == view.KindInput:
			parts = append(parts, m.editInput.View())
		case n.HasClass(view.ClassDestroy) && cursor && m.mode() == focusList:
			parts = append(parts, m.styles.muted.Render("✕"))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts[:1], ""), strings.Join(parts[1:], " "))
}
