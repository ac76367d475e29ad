package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/idilsaglam/todoreducer/internal/logger"
	"github.com/idilsaglam/todoreducer/internal/todo"
	"github.com/idilsaglam/todoreducer/internal/ui"
)

// Options tune behavior from config and root flags.
type Options struct {
	Theme     ui.Theme
	IDs       todo.IDSource
	AltScreen bool
	Group     bool // replay output grouped by pending/done

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.IDs == nil {
		o.IDs = todo.NewUUIDSource()
	}
	if o.Theme.Name == "" {
		o.Theme, _ = ui.ThemeByName("classic")
	}
}

// usageError marks problems with what the user typed (exit code 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()

	cmd, a := "", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "", "ui":
		return exitCode(doInteractive(opt), opt)

	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "replay":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, opt.Theme, "usage: todo replay < actions.txt")
			return 2
		}
		return exitCode(doReplay(opt), opt)
	}

	ui.Fail(opt.Stderr, opt.Theme, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a tiny reducer-driven to-do list

Usage:
  todo [flags] [subcommand]

Subcommands:
  (none), ui         Open the interactive list
  replay             Apply actions read from stdin and print the result
  help               Show this help

Replay actions (one per line, # starts a comment):
  add <name...>      Append a new item
  toggle <index>     Toggle done for item at 1-based index (alias: done)
  delete <index>     Remove item at 1-based index (alias: rm)

Flags:
  -theme <classic|neon|mono>
  -id-source <uuid|counter|clock>
  -group             group replay output by pending/done
  -log-file <path>   write debug logs here
  -log-level <level>

Examples:
  todo
  printf 'add Buy milk\ntoggle 1\n' | todo replay
`)
}

func exitCode(err error, opt Options) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		ui.Fail(opt.Stderr, opt.Theme, ue.msg)
		return 2
	}
	logger.ErrorWithStack(err)
	ui.Fail(opt.Stderr, opt.Theme, err.Error())
	return 1
}

// -------------- subcommand impls ----------------

func newStore(opt Options) *todo.Store {
	return todo.NewStore(todo.NewReducer(opt.IDs))
}

func doInteractive(opt Options) error {
	m := ui.New(newStore(opt), opt.Theme)

	popts := []tea.ProgramOption{tea.WithInput(opt.Stdin), tea.WithOutput(opt.Stdout)}
	if opt.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	log.Debug().Str("theme", opt.Theme.Name).Bool("alt_screen", opt.AltScreen).Msg("starting ui")

	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return errors.Wrap(err, "tui")
	}
	fm, ok := final.(ui.Model)
	if !ok {
		return nil
	}
	d, _ := fm.Todos().Stats()
	ui.OK(opt.Stdout, opt.Theme, fmt.Sprintf("%d items, %d done (not saved)", len(fm.Todos()), d))
	return nil
}

func doReplay(opt Options) error {
	store := newStore(opt)

	sc := bufio.NewScanner(opt.Stdin)
	for n := 1; sc.Scan(); n++ {
		a, err := parseAction(sc.Text(), store.Todos())
		if err != nil {
			return usagef("line %d: %s", n, err.Error())
		}
		if a != nil {
			store.Dispatch(a)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read actions")
	}

	printList(opt, store.Todos())
	return nil
}

// parseAction turns one replay line into an action. Blank and comment lines
// yield nil. Indexes are resolved to ids against the current list.
func parseAction(line string, todos todo.List) (todo.Action, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	fields := strings.Fields(trimmed)
	cmd, a := fields[0], fields[1:]

	switch cmd {
	case "add":
		// the name is the rest of the line after the separating blanks, untouched
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)[len(cmd):]
		name := strings.TrimLeftFunc(rest, unicode.IsSpace)
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("add: empty name")
		}
		return todo.Add{Name: name}, nil

	case "toggle", "done":
		id, err := resolveIndex(cmd, a, todos)
		if err != nil {
			return nil, err
		}
		return todo.Toggle{ID: id}, nil

	case "delete", "rm":
		id, err := resolveIndex(cmd, a, todos)
		if err != nil {
			return nil, err
		}
		return todo.Delete{ID: id}, nil
	}
	return nil, errors.Errorf("unknown action: %s", cmd)
}

func resolveIndex(cmd string, a []string, todos todo.List) (todo.ID, error) {
	if len(a) != 1 {
		return "", errors.Errorf("usage: %s <index>", cmd)
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		return "", errors.Errorf("%s: not a number: %s", cmd, a[0])
	}
	if n < 1 || n > len(todos) {
		return "", errors.Errorf("%s: index out of range: have %d, got %d", cmd, len(todos), n)
	}
	return todos[n-1].ID, nil
}

// -------------- rendering helpers --------------

func printList(opt Options, todos todo.List) {
	t := opt.Theme
	d, _ := todos.Stats()

	var lines []string
	lines = append(lines, ui.Header(t, todos))
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, len(todos), 28)))
	lines = append(lines, "")
	if opt.Group {
		lines = append(lines, ui.GroupLines(t, todos)...)
	} else {
		lines = append(lines, ui.FlatLines(t, todos)...)
	}
	ui.Panel(opt.Stdout, t, lines)
}
