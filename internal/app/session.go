package app

import (
	"strings"
	"unicode/utf16"

	"github.com/Makepad-fr/tada/internal/model"
)

// FocusHandle names the edit input of one session. Each session gets a
// fresh handle, so a focus request for an older session matches nothing.
type FocusHandle uint64

// Session is the single in-progress edit. WorkingTitle is a detached copy
// of the stored title; store changes made while editing do not touch it.
type Session struct {
	ID           model.TodoID
	WorkingTitle string
	Focus        FocusHandle
}

// FocusRequest asks the runtime to focus the input named by Handle after
// the next render and to put the caret at Caret.
//
// Caret counts UTF-16 code units, which is what text-input selection APIs
// take. Runtimes with rune-indexed inputs convert with RuneOffset.
type FocusRequest struct {
	Handle FocusHandle
	Caret  int
}

// CommitPolicy decides what CommitEdit writes back.
type CommitPolicy int

const (
	// CommitRaw stores the working title verbatim, including empty titles.
	CommitRaw CommitPolicy = iota
	// CommitTrim trims the working title and removes the todo when the
	// result is empty.
	CommitTrim
)

func (p CommitPolicy) String() string {
	switch p {
	case CommitTrim:
		return "trim"
	default:
		return "raw"
	}
}

// ParseCommitPolicy accepts "raw" or "trim".
func ParseCommitPolicy(s string) (CommitPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return CommitRaw, true
	case "trim":
		return CommitTrim, true
	}
	return CommitRaw, false
}

// UTF16Len is the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// RuneOffset converts a UTF-16 offset into s to a rune offset. Offsets
// past the end clamp to the rune length; an offset inside a surrogate
// pair rounds up to the following rune.
func RuneOffset(s string, units int) int {
	if units <= 0 {
		return 0
	}
	runes, seen := 0, 0
	for _, r := range s {
		if seen >= units {
			break
		}
		seen += utf16.RuneLen(r)
		runes++
	}
	return runes
}

func (s State) openSession(id model.TodoID) (State, *FocusRequest) {
	t, ok := s.store.Get(id)
	if !ok {
		return s, nil
	}
	s.nextFocus++
	s.session = &Session{
		ID:           id,
		WorkingTitle: t.Title,
		Focus:        s.nextFocus,
	}
	return s, &FocusRequest{Handle: s.nextFocus, Caret: UTF16Len(t.Title)}
}

func (s State) changeWorkingTitle(text string) State {
	if s.session == nil {
		return s
	}
	next := *s.session
	next.WorkingTitle = text
	s.session = &next
	return s
}

func (s State) commit() State {
	if s.session == nil {
		return s
	}
	sess := *s.session
	s.session = nil
	if !s.store.Has(sess.ID) {
		return s
	}
	s.store = s.store.Clone()
	switch s.commitPolicy {
	case CommitTrim:
		title := strings.TrimSpace(sess.WorkingTitle)
		if title == "" {
			s.store.Remove(sess.ID)
			return s
		}
		s.store.Rename(sess.ID, title)
	default:
		s.store.Rename(sess.ID, sess.WorkingTitle)
	}
	return s
}
