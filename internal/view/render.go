package view

import (
	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
)

// Class names shared with runtimes.
const (
	ClassNewTodo   = "new-todo"
	ClassClear     = "clear"
	ClassSection   = "todo-section"
	ClassList      = "todo-list"
	ClassCompleted = "completed"
	ClassEditing   = "editing"
	ClassToggle    = "toggle"
	ClassDestroy   = "destroy"
	ClassEdit      = "edit"
)

const newTodoPlaceholder = "What needs to be done?"

// Render projects s into a UI tree. It only reads s.
func Render(s app.State) Node {
	root := Node{
		Kind:     KindApp,
		Children: []Node{renderHeader(s.PendingNewTitle())},
	}
	if s.Len() > 0 {
		sess, _ := s.Session()
		root.Children = append(root.Children, renderList(s.Todos(), sess))
	}
	return root
}

func renderHeader(pending string) Node {
	return Node{
		Kind: KindHeader,
		Children: []Node{
			{Kind: KindHeading, Text: "todos"},
			{
				Kind:        KindInput,
				Class:       []string{ClassNewTodo},
				Value:       pending,
				Placeholder: newTodoPlaceholder,
				Handlers: []Handler{
					{On: EventInput, Text: TextNewTitle},
					{On: EventKeyDown, Key: KeyEnter, Msg: app.CreateFromPending{}},
				},
			},
			{
				Kind:     KindButton,
				Class:    []string{ClassClear},
				Text:     "Clear All",
				Handlers: []Handler{{On: EventClick, Msg: app.ClearAll{}}},
			},
		},
	}
}

func renderList(todos []model.Todo, sess app.Session) Node {
	rows := make([]Node, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, renderRow(t, sess))
	}
	return Node{
		Kind:  KindSection,
		Class: []string{ClassSection},
		Children: []Node{{
			Kind:     KindList,
			Class:    []string{ClassList},
			Children: rows,
		}},
	}
}

func renderRow(t model.Todo, sess app.Session) Node {
	editing := sess.Focus != 0 && sess.ID == t.ID
	row := Node{Kind: KindRow, Key: t.ID.String()}
	if t.Complete {
		row.Class = append(row.Class, ClassCompleted)
	}
	if editing {
		row.Class = append(row.Class, ClassEditing)
	}

	row.Children = []Node{
		{
			Kind:     KindCheckbox,
			Class:    []string{ClassToggle},
			Checked:  t.Complete,
			Handlers: []Handler{{On: EventChange, Msg: app.ToggleComplete{ID: t.ID}}},
		},
	}
	if editing {
		row.Children = append(row.Children, Node{
			Kind:  KindInput,
			Class: []string{ClassEdit},
			Value: sess.WorkingTitle,
			Focus: sess.Focus,
			Handlers: []Handler{
				{On: EventInput, Text: TextWorkingTitle},
				{On: EventKeyDown, Key: KeyEscape, Msg: app.Deselect{}},
				{On: EventKeyDown, Key: KeyEnter, Msg: app.CommitEdit{}},
				{On: EventBlur, Msg: app.CommitEdit{}},
			},
		})
	} else {
		row.Children = append(row.Children, Node{
			Kind:     KindLabel,
			Text:     t.Title,
			Handlers: []Handler{{On: EventDoubleClick, Msg: app.SelectForEdit{ID: t.ID}}},
		})
	}
	row.Children = append(row.Children, Node{
		Kind:     KindButton,
		Class:    []string{ClassDestroy},
		Text:     "X",
		Handlers: []Handler{{On: EventClick, Msg: app.RemoveTodo{ID: t.ID}}},
	})
	return row
}

// Rows returns the list rows of a rendered tree in display order.
func Rows(root Node) []Node {
	return FindAll(root, func(n Node) bool { return n.Kind == KindRow })
}
