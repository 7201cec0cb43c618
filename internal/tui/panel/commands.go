package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener is a source of host messages, such as a socket or the state
// file watcher. Listen blocks until the next message.
type Listener interface {
	Listen() tea.Cmd
}

// listenCmd waits on listener i and tags what it returns.
func listenCmd(l Listener, i int) tea.Cmd {
	wait := l.Listen()
	if wait == nil {
		return nil
	}
	return func() tea.Msg {
		msg := wait()
		if msg == nil {
			return nil
		}
		return listenerMsg{index: i, msg: msg}
	}
}

// revealTickCmd schedules the next reveal frame.
func revealTickCmd(frame int, every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg {
		return revealTickMsg{frame: frame}
	})
}
