package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Press  key.Binding
	Toggle key.Binding
	Delete key.Binding
	Add    key.Binding
	Submit key.Binding
	Switch key.Binding
	Leave  key.Binding
	Quit   key.Binding
	Help   key.Binding

	ForceQuit key.Binding // works while typing too
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "toggle button")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "delete button")),
		Press:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
		Toggle: key.NewBinding(key.WithKeys(" ", "t"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Switch: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// formKeys is the help shown while the entry form has focus.
type formKeys keyMap

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Switch, k.Leave, k.ForceQuit}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Add, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Press, k.Toggle, k.Delete},
		{k.Add, k.Switch, k.Quit, k.Help},
	}
}
