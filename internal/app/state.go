// Package app holds the todo editor state and the transition function that
// is the only way to change it.
package app

import "github.com/Makepad-fr/tada/internal/model"

// State is the whole editor state. It is a value: Transition returns a new
// State and never mutates the one it was given.
type State struct {
	pendingNewTitle string
	store           *model.Store
	session         *Session

	nextFocus    FocusHandle
	commitPolicy CommitPolicy
}

// Option configures NewState.
type Option func(*State)

// WithIDSource sets where new todo ids come from.
func WithIDSource(src model.IDSource) Option {
	return func(s *State) { s.store = model.NewStore(src) }
}

// WithCommitPolicy sets how CommitEdit treats the working title.
func WithCommitPolicy(p CommitPolicy) Option {
	return func(s *State) { s.commitPolicy = p }
}

// NewState returns an empty, idle state.
func NewState(opts ...Option) State {
	s := State{store: model.NewStore(nil)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s State) PendingNewTitle() string { return s.pendingNewTitle }

// Todos returns the stored todos in display order.
func (s State) Todos() []model.Todo {
	if s.store == nil {
		return nil
	}
	return s.store.All()
}

// Len is the number of stored todos.
func (s State) Len() int {
	if s.store == nil {
		return 0
	}
	return s.store.Len()
}

// Todo looks up one todo.
func (s State) Todo(id model.TodoID) (model.Todo, bool) {
	if s.store == nil {
		return model.Todo{}, false
	}
	return s.store.Get(id)
}

// Stats counts complete and pending todos.
func (s State) Stats() (done, pending int) {
	if s.store == nil {
		return 0, 0
	}
	return s.store.Stats()
}

// Session returns the active edit session, if any.
func (s State) Session() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Editing reports whether id is the todo being edited.
func (s State) Editing(id model.TodoID) bool {
	return s.session != nil && s.session.ID == id
}

// CommitPolicy reports how CommitEdit treats the working title.
func (s State) CommitPolicy() CommitPolicy { return s.commitPolicy }
