package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/todoreducer/internal/todo"
)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Header is the title line with live counts.
func Header(t Theme, todos todo.List) string {
	d, p := todos.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)
}

// Panel draws lines inside the theme's frame.
func Panel(w io.Writer, t Theme, lines []string) {
	fmt.Fprintln(w, PanelString(t, strings.Join(lines, "\n")))
}

func PanelString(t Theme, inner string) string {
	return t.frame().Render(inner)
}

// FlatLines renders records one per line with their 1-based index.
func FlatLines(t Theme, todos todo.List) []string {
	if len(todos) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(todos))
	for i, it := range todos {
		idx := fmt.Sprintf("%2d.", i+1)
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), t.Box(it.Complete), nameText(t, it)))
	}
	return out
}

// GroupLines renders pending records first, then complete ones.
func GroupLines(t Theme, todos todo.List) []string {
	var pend, done todo.List
	for _, it := range todos {
		if it.Complete {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, FlatLines(t, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, FlatLines(t, done)...)
	}
	return lines
}

const maxNameWidth = 80

func nameText(t Theme, it todo.Todo) string {
	name := it.Name
	if r := []rune(name); len(r) > maxNameWidth {
		name = string(r[:maxNameWidth-3]) + "..."
	}
	if it.Complete {
		return t.Done.Render(name)
	}
	return name
}
