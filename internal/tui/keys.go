package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds all key bindings for the trend viewer.
type keyMap struct {
	Quit     key.Binding
	PrevRepo key.Binding
	NextRepo key.Binding
	Help     key.Binding
}

// keys is the global key map.
var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	PrevRepo: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev repository"),
	),
	NextRepo: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next repository"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
}

// helpText is the full help string displayed in the footer when help is toggled on.
const helpText = "q/ctrl+c: quit  ←/→ or h/l: switch repository  ?: toggle help"
