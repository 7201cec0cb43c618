package bridge

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
)

// activateDemo replaces the monitor list with the sample displays, shows the
// panel and applies the accent. It then publishes the same notification as
// the host path, so renderers cannot tell the two apart.
func (b *Bridge) activateDemo() tea.Cmd {
	b.state.setMonitors(monitor.DemoMonitors())
	b.doc.Visible = true

	accent := b.state.Accent()
	if accent == "" {
		accent = DefaultAccent
	}
	b.doc.AccentColor = accent

	b.log.Info("demo mode enabled", "monitors", len(b.state.monitors), "accent", accent)
	return b.publish()
}
