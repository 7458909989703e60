package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	CloseWindow  key.Binding
	WindowUp     key.Binding
	WindowDown   key.Binding
	WindowPgUp   key.Binding
	WindowPgDown key.Binding
}

var keys = keyMap{
	// Only on an empty line, like EOF in a shell.
	Quit: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "shift+up"),
		key.WithHelp("pgup", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "shift+down"),
		key.WithHelp("pgdown", "scroll down"),
	),
	CloseWindow: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc/q", "close"),
	),
	WindowUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll"),
	),
	WindowDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll"),
	),
	WindowPgUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "page up"),
	),
	WindowPgDown: key.NewBinding(
		key.WithKeys("pgdown", "f", " "),
		key.WithHelp("pgdown", "page down"),
	),
}
