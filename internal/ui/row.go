package ui

import (
	"strings"

	"github.com/idilsaglam/todoreducer/internal/todo"
)

// Control is one of the per-row buttons.
type Control int

const (
	ControlToggle Control = iota
	ControlDelete
)

func (c Control) String() string {
	if c == ControlDelete {
		return "delete"
	}
	return "toggle"
}

// Row renders a single record and turns its controls into actions.
// It keeps no state; everything it shows comes from Todo.
type Row struct {
	Todo     todo.Todo
	Dispatch todo.Dispatcher
}

func (r Row) Toggle() { r.Dispatch.Dispatch(todo.Toggle{ID: r.Todo.ID}) }

func (r Row) Delete() { r.Dispatch.Dispatch(todo.Delete{ID: r.Todo.ID}) }

// Activate presses the given control.
func (r Row) Activate(c Control) {
	switch c {
	case ControlToggle:
		r.Toggle()
	case ControlDelete:
		r.Delete()
	}
}

// View renders "> ☐ name  [toggle] [delete]". focus only matters when the
// row is selected.
func (r Row) View(t Theme, selected bool, focus Control) string {
	prefix := "  "
	if selected {
		prefix = t.Cursor.Render(">") + " "
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(t.Box(r.Todo.Complete))
	b.WriteString(" ")
	b.WriteString(nameText(t, r.Todo))
	b.WriteString("  ")
	for i, c := range []Control{ControlToggle, ControlDelete} {
		if i > 0 {
			b.WriteString(" ")
		}
		label := "[" + c.String() + "]"
		if selected && c == focus {
			b.WriteString(t.ActiveControl.Render(label))
		} else {
			b.WriteString(t.Control.Render(label))
		}
	}
	return b.String()
}
