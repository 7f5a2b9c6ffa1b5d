package app

// Transition applies m to s and returns the next state plus an optional
// focus request for the runtime. It is total: messages aimed at missing
// todos or at a missing session leave the state unchanged.
func Transition(s State, m Msg) (State, *FocusRequest) {
	if s.store == nil {
		s = NewState(WithCommitPolicy(s.commitPolicy))
	}

	switch m := m.(type) {
	case SetNewTitle:
		s.pendingNewTitle = m.Text

	case CreateFromPending:
		store := s.store.Clone()
		if _, ok := store.Create(s.pendingNewTitle); ok {
			s.store = store
			s.pendingNewTitle = ""
		}

	case ToggleComplete:
		if s.store.Has(m.ID) {
			s.store = s.store.Clone()
			s.store.ToggleComplete(m.ID)
		}

	case RemoveTodo:
		if s.store.Has(m.ID) {
			s.store = s.store.Clone()
			s.store.Remove(m.ID)
		}
		if s.Editing(m.ID) {
			s.session = nil
		}

	case ClearAll:
		s.store = s.store.Clone()
		s.store.ClearAll()
		if s.session != nil && !s.store.Has(s.session.ID) {
			s.session = nil
		}

	case SelectForEdit:
		return s.openSession(m.ID)

	case Deselect:
		s.session = nil

	case ChangeWorkingTitle:
		s = s.changeWorkingTitle(m.Text)

	case CommitEdit:
		s = s.commit()
	}
	return s, nil
}

// Apply runs msgs through Transition in order and returns the final state
// with every focus request that was issued.
func Apply(s State, msgs ...Msg) (State, []FocusRequest) {
	var reqs []FocusRequest
	for _, m := range msgs {
		var req *FocusRequest
		s, req = Transition(s, m)
		if req != nil {
			reqs = append(reqs, *req)
		}
	}
	return s, reqs
}
