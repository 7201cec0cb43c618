package panel

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the panel-level bindings. Row toggling is bound inside
// components.Option.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Dimmer   key.Binding
	Brighter key.Binding
	Toggle   key.Binding
	Filter   key.Binding
	Dismiss  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Dimmer:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "dimmer")),
		Brighter: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "brighter")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Dimmer, k.Brighter, k.Toggle, k.Help, k.Dismiss}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Dimmer, k.Brighter},
		{k.Filter, k.Help, k.Dismiss, k.Quit},
	}
}
