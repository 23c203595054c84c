package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the dialog keys for the help line. Input handling
// itself lives in the input package.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Run    key.Binding
	Cancel key.Binding
	Move   key.Binding
	Help   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next / show all"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Move: key.NewBinding(
			key.WithKeys("alt+up", "alt+down", "alt+left", "alt+right"),
			key.WithHelp("alt+arrows", "move dialog"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Cancel, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Run, k.Cancel},
		{k.Move, k.Help},
	}
}
