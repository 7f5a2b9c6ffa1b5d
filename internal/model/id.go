package model

import (
	"bytes"

	"github.com/google/uuid"
)

// TodoID identifies a todo. IDs are UUIDv7 values, so byte order is
// creation order.
type TodoID uuid.UUID

// NilID is the zero TodoID; no stored todo ever carries it.
var NilID TodoID

func (id TodoID) String() string { return uuid.UUID(id).String() }

// Compare orders ids by their bytes: -1, 0 or +1.
func (id TodoID) Compare(other TodoID) int {
	return bytes.Compare(id[:], other[:])
}

// IDSource hands out fresh ids.
type IDSource interface {
	Next() TodoID
}

// IDSourceFunc adapts a plain function to IDSource.
type IDSourceFunc func() TodoID

func (f IDSourceFunc) Next() TodoID { return f() }

// UUIDv7 is the default source. uuid.NewV7 is monotonic within a process.
var UUIDv7 IDSource = IDSourceFunc(func() TodoID {
	return TodoID(uuid.Must(uuid.NewV7()))
})

// successor returns the smallest id strictly greater than id.
func successor(id TodoID) TodoID {
	next := id
	for i := len(next) - 1; i >= 0; i-- {
		next[i]++
		if next[i] != 0 {
			break
		}
	}
	return next
}
