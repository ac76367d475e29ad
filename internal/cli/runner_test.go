package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoreducer/internal/todo"
	"github.com/idilsaglam/todoreducer/internal/ui"
)

func testOptions(t *testing.T, stdin string) (Options, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	th, err := ui.ThemeByName("mono")
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	return Options{
		Theme:  th,
		IDs:    todo.NewCounterSource(),
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRun_Replay(t *testing.T) {
	input := `# groceries
add Buy milk
add Walk   the dog

toggle 1
add Call mum
rm 2
`
	opt, stdout, stderr := testOptions(t, input)

	code := Run([]string{"replay"}, opt)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Todos   x 1  - 1  Total 2")
	assert.Contains(t, out, " 1. [x] Buy milk")
	assert.Contains(t, out, " 2. [ ] Call mum")
	assert.NotContains(t, out, "Walk")
}

func TestRun_ReplayBuyMilk(t *testing.T) {
	opt, stdout, _ := testOptions(t, "add Buy milk\ntoggle 1\ndone 1\ndelete 1\n")

	require.Equal(t, 0, Run([]string{"replay"}, opt))
	assert.Contains(t, stdout.String(), "no items")
	assert.Contains(t, stdout.String(), "Total 0")
}

func TestRun_ReplayGrouped(t *testing.T) {
	opt, stdout, _ := testOptions(t, "add a\nadd b\ntoggle 1\n")
	opt.Group = true

	require.Equal(t, 0, Run([]string{"replay"}, opt))
	out := stdout.String()
	assert.Less(t, strings.Index(out, "Pending"), strings.Index(out, "[ ] b"))
	assert.Less(t, strings.Index(out, "Done"), strings.Index(out, "[x] a"))
}

func TestRun_ReplayErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "out of range", input: "add a\ntoggle 2\n", want: "line 2: toggle: index out of range: have 1, got 2"},
		{name: "not a number", input: "rm one\n", want: "line 1: rm: not a number: one"},
		{name: "missing index", input: "delete\n", want: "line 1: usage: delete <index>"},
		{name: "empty add", input: "add\n", want: "line 1: add: empty name"},
		{name: "unknown", input: "rename 1 x\n", want: "line 1: unknown action: rename"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, stdout, stderr := testOptions(t, tt.input)

			assert.Equal(t, 2, Run([]string{"replay"}, opt))
			assert.Contains(t, stderr.String(), tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_Usage(t *testing.T) {
	opt, stdout, stderr := testOptions(t, "")
	assert.Equal(t, 0, Run([]string{"help"}, opt))
	assert.Contains(t, stdout.String(), "Usage:")

	assert.Equal(t, 2, Run([]string{"replay", "extra"}, opt))
	assert.Contains(t, stderr.String(), "usage: todo replay")

	stderr.Reset()
	assert.Equal(t, 2, Run([]string{"frobnicate"}, opt))
	assert.Contains(t, stderr.String(), "unknown subcommand: frobnicate")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestParseAction(t *testing.T) {
	todos := todo.List{{ID: "a"}, {ID: "b"}}
	tests := []struct {
		line string
		want todo.Action
	}{
		{line: "", want: nil},
		{line: "   # note", want: nil},
		{line: "add  Buy   milk ", want: todo.Add{Name: "Buy   milk "}},
		{line: "\tadd x\ty", want: todo.Add{Name: "x\ty"}},
		{line: "toggle 2", want: todo.Toggle{ID: "b"}},
		{line: "done 1", want: todo.Toggle{ID: "a"}},
		{line: "rm 2", want: todo.Delete{ID: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseAction(tt.line, todos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_ReplayKeepsNameSpacing(t *testing.T) {
	opt, stdout, stderr := testOptions(t, "add Walk   the dog\n")

	require.Equal(t, 0, Run([]string{"replay"}, opt), stderr.String())
	assert.Contains(t, stdout.String(), "[ ] Walk   the dog")
}

func TestRun_ReplayClockIDs(t *testing.T) {
	opt, stdout, stderr := testOptions(t, "add a\nadd b\ntoggle 2\n")
	opt.IDs = todo.NewClockSource()

	require.Equal(t, 0, Run([]string{"replay"}, opt), stderr.String())
	out := stdout.String()
	assert.Contains(t, out, " 1. [ ] a")
	assert.Contains(t, out, " 2. [x] b")
}

func TestRun_ReadErrorIsLoggedWithStack(t *testing.T) {
	originalLogger := log.Logger
	t.Cleanup(func() { log.Logger = originalLogger })
	var logs bytes.Buffer
	log.Logger = log.Output(&logs)

	opt, _, stderr := testOptions(t, "")
	opt.Stdin = iotest.ErrReader(errors.New("disk gone"))

	assert.Equal(t, 1, Run([]string{"replay"}, opt))
	assert.Contains(t, stderr.String(), "read actions: disk gone")
	assert.Contains(t, logs.String(), "disk gone")
	assert.Contains(t, logs.String(), "read actions")
	assert.Contains(t, logs.String(), "doReplay", "stack trace should name the failing function")
}
