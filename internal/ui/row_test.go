package ui

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoreducer/internal/todo"
)

type recorder []todo.Action

func (r *recorder) Dispatch(a todo.Action) { *r = append(*r, a) }

func TestRow_Controls(t *testing.T) {
	var rec recorder
	row := Row{Todo: todo.Todo{ID: "42", Name: "Buy milk"}, Dispatch: &rec}

	row.Toggle()
	row.Delete()
	row.Activate(ControlToggle)
	row.Activate(ControlDelete)

	assert.Equal(t, recorder{
		todo.Toggle{ID: "42"},
		todo.Delete{ID: "42"},
		todo.Toggle{ID: "42"},
		todo.Delete{ID: "42"},
	}, rec)
}

func TestRow_View(t *testing.T) {
	th, err := ThemeByName("mono")
	require.NoError(t, err)

	tests := []struct {
		name     string
		todo     todo.Todo
		selected bool
		want     string
	}{
		{
			name: "pending",
			todo: todo.Todo{ID: "1", Name: "Buy milk"},
			want: "  [ ] Buy milk  [toggle] [delete]",
		},
		{
			name:     "complete and selected",
			todo:     todo.Todo{ID: "1", Name: "Buy milk", Complete: true},
			selected: true,
			want:     "> [x] Buy milk  [toggle] [delete]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{Todo: tt.todo, Dispatch: todo.DispatchFunc(func(todo.Action) {})}
			assert.Equal(t, tt.want, row.View(th, tt.selected, ControlToggle))
		})
	}
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "toggle", ControlToggle.String())
	assert.Equal(t, "delete", ControlDelete.String())
}

var (
	sgr           = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	strikethrough = regexp.MustCompile(`\x1b\[(?:[0-9]+;)*9(?:;[0-9]+)*m`)
)

func TestRow_CompleteNameIsStruckThrough(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	th, err := ThemeByName("classic")
	require.NoError(t, err)
	noop := todo.DispatchFunc(func(todo.Action) {})
	pendingTodo := todo.Todo{ID: "1", Name: "Buy milk"}
	completeTodo := todo.Todo{ID: "1", Name: "Buy milk", Complete: true}

	pending := Row{Todo: pendingTodo, Dispatch: noop}.View(th, false, ControlToggle)
	complete := Row{Todo: completeTodo, Dispatch: noop}.View(th, false, ControlToggle)
	assert.NotEqual(t, pending, complete)

	assert.Equal(t, "Buy milk", nameText(th, pendingTodo))
	styled := nameText(th, completeTodo)
	assert.Regexp(t, strikethrough, styled)
	assert.Equal(t, "Buy milk", sgr.ReplaceAllString(styled, ""))
}
