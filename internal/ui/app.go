package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoreducer/internal/todo"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusList
)

const errEmptyName = "Name cannot be empty"

// Model is the root of the program. It owns the store and the text the user
// is typing into the form; rows are rebuilt from the store on every render.
type Model struct {
	store *todo.Store
	theme Theme
	keys  keyMap
	help  help.Model

	entry   textinput.Model
	focus   focusArea
	cursor  todo.ID // selected row, by id so it survives re-renders
	control Control
	formErr string

	width int
}

func New(store *todo.Store, t Theme) Model {
	entry := textinput.New()
	entry.Prompt = "> "
	entry.Placeholder = "What needs doing?"
	entry.Focus()

	h := help.New()
	h.Styles.ShortKey = t.Muted
	h.Styles.ShortDesc = t.Muted
	h.Styles.FullKey = t.Muted
	h.Styles.FullDesc = t.Muted

	return Model{
		store: store,
		theme: t,
		keys:  defaultKeyMap(),
		help:  h,
		entry: entry,
		focus: focusForm,
		width: 80,
	}
}

// Todos exposes the current state, mostly for callers that inspect the final
// model after the program exits.
func (m Model) Todos() todo.List { return m.store.Todos() }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusForm {
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Switch), key.Matches(msg, m.keys.Leave):
		if len(m.store.Todos()) > 0 {
			m.focusList()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	if m.formErr != "" && strings.TrimSpace(m.entry.Value()) != "" {
		m.formErr = ""
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Switch):
		cmd := m.focusForm()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Left):
		m.control = ControlToggle
	case key.Matches(msg, m.keys.Right):
		m.control = ControlDelete
	case key.Matches(msg, m.keys.Press):
		m.press(m.control)
	case key.Matches(msg, m.keys.Toggle):
		m.press(ControlToggle)
	case key.Matches(msg, m.keys.Delete):
		m.press(ControlDelete)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	if len(m.store.Todos()) == 0 {
		cmd := m.focusForm()
		return m, cmd
	}
	return m, nil
}

// submit sends the entry text as an add action and clears the form.
func (m *Model) submit() {
	name := m.entry.Value()
	if strings.TrimSpace(name) == "" {
		m.formErr = errEmptyName
		return
	}
	m.store.Dispatch(todo.Add{Name: name})
	m.entry.SetValue("")
	m.formErr = ""
	if m.cursor == "" {
		todos := m.store.Todos()
		m.cursor = todos[len(todos)-1].ID
	}
}

// press activates a control on the selected row. After a delete the cursor
// moves to the row that took its place.
func (m *Model) press(c Control) {
	i := m.selected()
	if i < 0 {
		return
	}
	row := Row{Todo: m.store.Todos()[i], Dispatch: m.store}
	row.Activate(c)

	todos := m.store.Todos()
	switch {
	case len(todos) == 0:
		m.cursor = ""
	case todos.Index(m.cursor) < 0:
		if i >= len(todos) {
			i = len(todos) - 1
		}
		m.cursor = todos[i].ID
	}
}

func (m *Model) move(delta int) {
	todos := m.store.Todos()
	if len(todos) == 0 {
		return
	}
	i := m.selected() + delta
	if i < 0 {
		i = 0
	}
	if i >= len(todos) {
		i = len(todos) - 1
	}
	m.cursor = todos[i].ID
}

// selected returns the index of the cursor row, falling back to the first row.
func (m *Model) selected() int {
	todos := m.store.Todos()
	if len(todos) == 0 {
		return -1
	}
	if i := todos.Index(m.cursor); i >= 0 {
		return i
	}
	m.cursor = todos[0].ID
	return 0
}

func (m *Model) focusList() {
	m.focus = focusList
	m.entry.Blur()
	m.selected()
}

func (m *Model) focusForm() tea.Cmd {
	m.focus = focusForm
	return m.entry.Focus()
}

func (m Model) View() string {
	t := m.theme
	todos := m.store.Todos()
	d, _ := todos.Stats()

	var lines []string
	lines = append(lines, Header(t, todos))
	lines = append(lines, t.Muted.Render(ProgressBar(d, len(todos), 28)))
	lines = append(lines, "")

	formTitle := "Add new item"
	if m.formErr != "" {
		formTitle += " " + t.Error.Render(m.formErr)
	}
	form := t.frame()
	if m.focus == focusForm {
		form = form.BorderForeground(accentColor(t))
	}
	lines = append(lines, form.Render(formTitle+"\n"+m.entry.View()))
	lines = append(lines, "")

	if len(todos) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for _, it := range todos {
		selected := m.focus == focusList && it.ID == m.cursor
		row := Row{Todo: it, Dispatch: m.store}
		lines = append(lines, row.View(t, selected, m.control))
	}

	lines = append(lines, "")
	if m.focus == focusForm {
		lines = append(lines, m.help.View(formKeys(m.keys)))
	} else {
		lines = append(lines, m.help.View(m.keys))
	}
	return PanelString(t, strings.Join(lines, "\n"))
}

func accentColor(t Theme) lipgloss.TerminalColor {
	return t.Accent.GetForeground()
}
