package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/view"
)

// step is one parsed script line. Row-addressed steps are resolved against
// the tree rendered at the moment they run, so "toggle 1" always means the
// first row currently shown.
type step struct {
	line int
	verb string
	text string
	row  int // 1-based, 0 when unused
}

// verbs maps script verbs to whether they take free text, a row number or
// nothing.
var verbs = map[string]argKind{
	"new":      argText,
	"add":      argText,
	"create":   argNone,
	"toggle":   argRow,
	"remove":   argRow,
	"clear":    argNone,
	"select":   argRow,
	"deselect": argNone,
	"edit":     argText,
	"commit":   argNone,
}

type argKind int

const (
	argNone argKind = iota
	argText
	argRow
)

// parseScript reads one command per line. Blank lines and lines starting
// with '#' are skipped.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		verb, rest, _ := strings.Cut(strings.TrimLeft(raw, " \t"), " ")
		verb = strings.ToLower(verb)
		kind, ok := verbs[verb]
		if !ok {
			return nil, usageErrorf("line %d: unknown command %q", n, verb)
		}
		st := step{line: n, verb: verb}
		switch kind {
		case argText:
			st.text = rest
		case argRow:
			idx, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil || idx < 1 {
				return nil, usageErrorf("line %d: %s: not a row number: %q", n, verb, strings.TrimSpace(rest))
			}
			st.row = idx
		case argNone:
			if strings.TrimSpace(rest) != "" {
				return nil, usageErrorf("line %d: %s takes no arguments", n, verb)
			}
		}
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

// action is one event aimed at a node of the rendered tree.
type action struct {
	target func(root view.Node) (view.Node, bool)
	event  view.Event
}

var (
	pressEnter  = view.Event{Kind: view.EventKeyDown, Key: view.KeyEnter}
	pressEscape = view.Event{Kind: view.EventKeyDown, Key: view.KeyEscape}
	click       = view.Event{Kind: view.EventClick}
)

// actions turns st into the events a user would raise for it.
func (st step) actions() []action {
	typed := view.Event{Kind: view.EventInput, Text: st.text}
	switch st.verb {
	case "new":
		return []action{{byClass(view.ClassNewTodo), typed}}
	case "add":
		return []action{{byClass(view.ClassNewTodo), typed}, {byClass(view.ClassNewTodo), pressEnter}}
	case "create":
		return []action{{byClass(view.ClassNewTodo), pressEnter}}
	case "toggle":
		return []action{{inRow(st.row, view.ByClass(view.ClassToggle)), view.Event{Kind: view.EventChange}}}
	case "remove":
		return []action{{inRow(st.row, view.ByClass(view.ClassDestroy)), click}}
	case "clear":
		return []action{{byClass(view.ClassClear), click}}
	case "select":
		return []action{{inRow(st.row, isLabel), view.Event{Kind: view.EventDoubleClick}}}
	case "edit":
		return []action{{byClass(view.ClassEdit), typed}}
	case "commit":
		return []action{{byClass(view.ClassEdit), pressEnter}}
	case "deselect":
		return []action{{byClass(view.ClassEdit), pressEscape}}
	}
	return nil
}

func byClass(class string) func(view.Node) (view.Node, bool) {
	return func(root view.Node) (view.Node, bool) {
		return view.Find(root, view.ByClass(class))
	}
}

// inRow finds the node matching pred on 1-based row n. A row that is not
// shown has no nodes, so the step does nothing.
func inRow(n int, pred func(view.Node) bool) func(view.Node) (view.Node, bool) {
	return func(root view.Node) (view.Node, bool) {
		rows := view.Rows(root)
		if n > len(rows) {
			return view.Node{}, false
		}
		return view.Find(rows[n-1], pred)
	}
}

func isLabel(n view.Node) bool { return n.Kind == view.KindLabel }
