package panel

import tea "github.com/charmbracelet/bubbletea"

// listenerMsg tags a message with the listener that produced it so the
// listener can be re-armed after the message is handled.
type listenerMsg struct {
	index int
	msg   tea.Msg
}

// revealTickMsg advances the reveal animation by one frame.
type revealTickMsg struct {
	frame int
}
