package app

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
)

// Msg is one user intent. It is the only input to Transition.
type Msg interface {
	msg()
}

type (
	// SetNewTitle replaces the pending title of the new-todo input.
	SetNewTitle struct{ Text string }
	// CreateFromPending creates a todo from the pending title.
	CreateFromPending struct{}
	// ToggleComplete flips the complete flag of a todo.
	ToggleComplete struct{ ID model.TodoID }
	// RemoveTodo deletes a todo.
	RemoveTodo struct{ ID model.TodoID }
	// ClearAll deletes every todo.
	ClearAll struct{}
	// SelectForEdit opens an edit session on a todo.
	SelectForEdit struct{ ID model.TodoID }
	// Deselect closes the edit session without saving.
	Deselect struct{}
	// ChangeWorkingTitle replaces the title being edited.
	ChangeWorkingTitle struct{ Text string }
	// CommitEdit writes the working title back to the store.
	CommitEdit struct{}
)

func (SetNewTitle) msg()        {}
func (CreateFromPending) msg()  {}
func (ToggleComplete) msg()     {}
func (RemoveTodo) msg()         {}
func (ClearAll) msg()           {}
func (SelectForEdit) msg()      {}
func (Deselect) msg()           {}
func (ChangeWorkingTitle) msg() {}
func (CommitEdit) msg()         {}

// Describe returns a short, log-friendly name for m.
func Describe(m Msg) string {
	switch m := m.(type) {
	case SetNewTitle:
		return fmt.Sprintf("set-new-title(%q)", m.Text)
	case CreateFromPending:
		return "create"
	case ToggleComplete:
		return "toggle(" + m.ID.String() + ")"
	case RemoveTodo:
		return "remove(" + m.ID.String() + ")"
	case ClearAll:
		return "clear-all"
	case SelectForEdit:
		return "select(" + m.ID.String() + ")"
	case Deselect:
		return "deselect"
	case ChangeWorkingTitle:
		return fmt.Sprintf("change-working-title(%q)", m.Text)
	case CommitEdit:
		return "commit"
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", m)
	}
}
