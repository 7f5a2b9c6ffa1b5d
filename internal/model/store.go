package model

import (
	"maps"
	"slices"
	"strings"
)

// Store is an ordered set of todos keyed by id. Iteration follows id
// order, which is creation order.
//
// The zero value is an empty store that uses UUIDv7 ids.
type Store struct {
	ids    IDSource
	order  []TodoID
	byID   map[TodoID]Todo
	lastID TodoID
}

// NewStore returns an empty store drawing ids from src (UUIDv7 when nil).
func NewStore(src IDSource) *Store {
	return &Store{ids: src}
}

// Create trims title and inserts a new incomplete todo. Empty titles are
// rejected and ok is false.
func (s *Store) Create(title string) (id TodoID, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return NilID, false
	}
	id = s.nextID()
	if s.byID == nil {
		s.byID = make(map[TodoID]Todo)
	}
	s.byID[id] = Todo{ID: id, Title: title}
	s.order = append(s.order, id)
	return id, true
}

func (s *Store) nextID() TodoID {
	src := s.ids
	if src == nil {
		src = UUIDv7
	}
	id := src.Next()
	if id.Compare(s.lastID) <= 0 {
		id = successor(s.lastID)
	}
	s.lastID = id
	return id
}

// ToggleComplete flips the complete flag of id. Unknown ids are ignored.
func (s *Store) ToggleComplete(id TodoID) {
	t, ok := s.byID[id]
	if !ok {
		return
	}
	t.Complete = !t.Complete
	s.byID[id] = t
}

// Rename stores title verbatim for id. Unknown ids are ignored.
func (s *Store) Rename(id TodoID, title string) {
	t, ok := s.byID[id]
	if !ok {
		return
	}
	t.Title = title
	s.byID[id] = t
}

// Remove deletes id if present.
func (s *Store) Remove(id TodoID) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	if i, found := slices.BinarySearchFunc(s.order, id, TodoID.Compare); found {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// ClearAll empties the store. Ids issued later still sort after the
// cleared ones.
func (s *Store) ClearAll() {
	s.order = nil
	s.byID = nil
}

func (s *Store) Len() int { return len(s.order) }

func (s *Store) Has(id TodoID) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *Store) Get(id TodoID) (Todo, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// All returns the todos in display order.
func (s *Store) All() []Todo {
	out := make([]Todo, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Stats counts complete and pending todos.
func (s *Store) Stats() (done, pending int) {
	for _, t := range s.byID {
		if t.Complete {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clone returns an independent copy sharing the id source.
func (s *Store) Clone() *Store {
	return &Store{
		ids:    s.ids,
		order:  slices.Clone(s.order),
		byID:   maps.Clone(s.byID),
		lastID: s.lastID,
	}
}
