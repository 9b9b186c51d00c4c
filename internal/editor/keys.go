package editor

import (
	"hexinspect/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Little   key.Binding
	Big      key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+home", "g"),
			key.WithHelp("home/g", "start of file"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+end", "G"),
			key.WithHelp("end/G", "end of file"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "toggle endian"),
		),
		Little: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "little endian"),
		),
		Big: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "big endian"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Little, k.Big, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Toggle, k.Little, k.Big},
		{k.Help, k.Quit},
	}
}

// resolve maps a key press onto a navigation command.
func (k keyMap) resolve(msg tea.KeyMsg) (session.Command, bool) {
	table := []struct {
		binding key.Binding
		cmd     session.Command
	}{
		{k.Left, session.MoveLeft},
		{k.Right, session.MoveRight},
		{k.Up, session.MoveUp},
		{k.Down, session.MoveDown},
		{k.PageUp, session.PageUp},
		{k.PageDown, session.PageDown},
		{k.Home, session.Home},
		{k.End, session.End},
		{k.Toggle, session.ToggleEndian},
		{k.Little, session.SetLittle},
		{k.Big, session.SetBig},
		{k.Quit, session.Quit},
	}
	for _, entry := range table {
		if key.Matches(msg, entry.binding) {
			return entry.cmd, true
		}
	}
	return 0, false
}
