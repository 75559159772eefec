package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	ClockIn  key.Binding
	ClockOut key.Binding
	Sync     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ClockIn, k.ClockOut, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ClockIn, k.ClockOut, k.Sync},
		{k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ClockIn: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "clock in"),
		),
		ClockOut: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "clock out"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sync queue"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
