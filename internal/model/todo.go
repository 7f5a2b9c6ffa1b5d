package model

// Todo is the domain model for a todo entry.
type Todo struct {
	ID       TodoID
	Title    string
	Complete bool
}
