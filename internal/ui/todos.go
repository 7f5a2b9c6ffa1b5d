package ui

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/view"
)

const maxTitle = 80

// TreeLines turns a rendered UI tree into panel lines: a counter header, a
// progress bar and one line per row.
func (p *Printer) TreeLines(root view.Node) []string {
	t := p.theme
	rows := view.Rows(root)

	done := 0
	for _, r := range rows {
		if r.HasClass(view.ClassCompleted) {
			done++
		}
	}
	pending := len(rows) - done

	var heading, pendingTitle string
	if n, ok := view.Find(root, func(n view.Node) bool { return n.Kind == view.KindHeading }); ok {
		heading = n.Text
	}
	if n, ok := view.Find(root, view.ByClass(view.ClassNewTodo)); ok {
		pendingTitle = n.Value
	}

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			p.Bold(p.C(t.Title, heading)),
			p.C(t.Success, t.SymDone), done,
			p.C(t.Pending, t.SymPending), pending,
			p.C(t.Accent, "Total"), len(rows),
		),
		p.C(t.Muted, t.Progress(done, len(rows), 28)),
		"",
	}
	if pendingTitle != "" {
		lines = append(lines, p.C(t.Muted, "new: ")+pendingTitle, "")
	}

	if len(rows) == 0 {
		return append(lines, p.C(t.Muted, "no items"))
	}
	for i, r := range rows {
		lines = append(lines, p.rowLine(i, r))
	}
	return lines
}

func (p *Printer) rowLine(i int, row view.Node) string {
	t := p.theme
	idx := fmt.Sprintf("%2d.", i+1)
	box, color := t.BoxUnchecked, t.Muted
	if row.HasClass(view.ClassCompleted) {
		box, color = t.BoxChecked, t.Success
	}

	var title string
	if n, ok := view.Find(row, func(n view.Node) bool { return n.Kind == view.KindLabel }); ok {
		title = n.Text
	} else if n, ok := view.Find(row, view.ByClass(view.ClassEdit)); ok {
		title = n.Value + p.C(t.Accent, " (editing)")
	}
	if r := []rune(title); len(r) > maxTitle {
		title = string(r[:maxTitle-3]) + "..."
	}
	return fmt.Sprintf("%s %s %s", p.C(t.Muted, idx), p.C(color, box), title)
}
