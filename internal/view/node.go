// Package view projects app.State into a UI tree. The tree is plain data:
// event bindings are message values, not callbacks, and a runtime turns
// its own input events into Event values and asks the tree which message
// to dispatch.
package view

import "github.com/Makepad-fr/tada/internal/app"

// Kind is the element type of a Node.
type Kind int

const (
	KindApp Kind = iota
	KindHeader
	KindHeading
	KindInput
	KindButton
	KindSection
	KindList
	KindRow
	KindCheckbox
	KindLabel
)

var kindNames = [...]string{
	KindApp:      "app",
	KindHeader:   "header",
	KindHeading:  "h1",
	KindInput:    "input",
	KindButton:   "button",
	KindSection:  "section",
	KindList:     "ul",
	KindRow:      "li",
	KindCheckbox: "checkbox",
	KindLabel:    "label",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// EventKind is the type of a runtime input event.
type EventKind int

const (
	EventInput EventKind = iota
	EventKeyDown
	EventChange
	EventClick
	EventDoubleClick
	EventBlur
)

// Key names used by key-down bindings.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// Event is what the runtime observed on a node.
type Event struct {
	Kind EventKind
	Key  string // EventKeyDown only
	Text string // EventInput only
}

// TextTarget says which message an input event's text feeds.
type TextTarget int

const (
	TextNone TextTarget = iota
	TextNewTitle
	TextWorkingTitle
)

// Handler binds one event kind to a message. For EventKeyDown a non-empty
// Key restricts the binding to that key. When Text is set the message is
// built from the event text and Msg is ignored.
type Handler struct {
	On   EventKind
	Key  string
	Msg  app.Msg
	Text TextTarget
}

func (h Handler) matches(ev Event) bool {
	if h.On != ev.Kind {
		return false
	}
	return h.On != EventKeyDown || h.Key == "" || h.Key == ev.Key
}

func (h Handler) message(ev Event) app.Msg {
	switch h.Text {
	case TextNewTitle:
		return app.SetNewTitle{Text: ev.Text}
	case TextWorkingTitle:
		return app.ChangeWorkingTitle{Text: ev.Text}
	}
	return h.Msg
}

// Node is one element of the UI tree.
type Node struct {
	Kind        Kind
	Key         string
	Class       []string
	Text        string
	Value       string
	Placeholder string
	Checked     bool
	// Focus is non-zero on the edit input of the active session.
	Focus    app.FocusHandle
	Children []Node
	Handlers []Handler
}

// Handle returns the message bound to ev, if any.
func (n Node) Handle(ev Event) (app.Msg, bool) {
	for _, h := range n.Handlers {
		if h.matches(ev) {
			return h.message(ev), true
		}
	}
	return nil, false
}

// HasClass reports whether class is set on n.
func (n Node) HasClass(class string) bool {
	for _, c := range n.Class {
		if c == class {
			return true
		}
	}
	return false
}

// Find returns the first node in depth-first order that satisfies pred.
func Find(root Node, pred func(Node) bool) (Node, bool) {
	if pred(root) {
		return root, true
	}
	for _, c := range root.Children {
		if n, ok := Find(c, pred); ok {
			return n, true
		}
	}
	return Node{}, false
}

// FindAll returns every node satisfying pred in depth-first order.
func FindAll(root Node, pred func(Node) bool) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		if pred(n) {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// FindFocus returns the input carrying handle h.
func FindFocus(root Node, h app.FocusHandle) (Node, bool) {
	if h == 0 {
		return Node{}, false
	}
	return Find(root, func(n Node) bool { return n.Kind == KindInput && n.Focus == h })
}

// ByClass matches nodes carrying class.
func ByClass(class string) func(Node) bool {
	return func(n Node) bool { return n.HasClass(class) }
}
