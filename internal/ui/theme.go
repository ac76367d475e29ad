package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Theme bundles palette + symbols + the frame border.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done                                          lipgloss.Style // name of a complete record
	Cursor                                        lipgloss.Style
	Control, ActiveControl                        lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor
}

// ThemeNames lists the accepted values for ThemeByName.
var ThemeNames = []string{"classic", "neon", "mono"}

func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "classic":
		return Theme{
			Name:          "classic",
			Title:         lipgloss.NewStyle().Bold(true),
			Muted:         lipgloss.NewStyle().Faint(true),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Done:          lipgloss.NewStyle().Foreground(lipgloss.Color("248")).Strikethrough(true),
			Cursor:        lipgloss.NewStyle().Bold(true).Reverse(true),
			Control:       lipgloss.NewStyle().Faint(true),
			ActiveControl: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			BoxUnchecked:  "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color("8"),
		}, nil

	case "neon":
		return Theme{
			Name:          "neon",
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Done:          lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
			Cursor:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Control:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			ActiveControl: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			BoxUnchecked:  "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}, nil

	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Done:          plain,
			Cursor:        plain,
			Control:       plain,
			ActiveControl: plain.Underline(true),
			BoxUnchecked:  "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			Border:      lipgloss.Border{Top: "-", Bottom: "-", Left: "|", Right: "|", TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+"},
			BorderColor: lipgloss.NoColor{},
		}, nil
	}
	return Theme{}, errors.Errorf("unknown theme %q (want %s)", name, strings.Join(ThemeNames, ", "))
}

// Box returns the checkbox symbol for a record.
func (t Theme) Box(complete bool) string {
	if complete {
		return t.Success.Render(t.BoxChecked)
	}
	return t.Muted.Render(t.BoxUnchecked)
}

func (t Theme) frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
