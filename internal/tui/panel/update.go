package panel

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/transport"
	"github.com/alexisbeaulieu97/lumen/internal/ui/components"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showHelp {
			m.helpText = renderHelp(helpMarkdown(m.keys), m.panelWidth())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	// Host messages, re-arming the listener that delivered them
	case listenerMsg:
		next, cmd := m.Update(msg.msg)
		return next, tea.Batch(cmd, listenCmd(m.listeners[msg.index], msg.index))

	case bridge.InboundMsg:
		cmd := m.bridge.Update(msg)
		if _, ok := msg.Message.(bridge.Localization); ok && len(m.rows) > 0 {
			m.rebuild()
		}
		return m, cmd

	case bridge.MonitorsUpdatedMsg:
		m.rebuild()
		return m, m.startReveal()

	case revealTickMsg:
		return m.handleRevealTick(msg)

	// Transport status
	case bridge.SendFailedMsg:
		m.status = components.WarningAlert(m.bridge.State().Localize("host.sendFailed", "The host did not accept "+msg.Kind.String()))
		return m, nil

	case transport.HostDisconnectedMsg:
		m.status = components.ErrorAlert(m.bridge.State().Localize("host.disconnected", "Host disconnected"))
		if msg.Err != nil {
			m.log.Error(msg.Err, "host channel closed")
		}
		return m, nil

	case transport.HostExitedMsg:
		m.log.Info("host process exited, closing panel", "pid", msg.PID)
		return m, tea.Quit

	case transport.StateFileErrorMsg:
		m.log.Warn("state file unreadable", "path", msg.Path, "error", msg.Err.Error())
		return m, nil
	}

	return m, m.bridge.Update(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Escape is global and checked before anything else gets the key.
	if key.Matches(msg, m.keys.Dismiss) {
		m.showHelp = false
		if m.filtering {
			m.endFilter(true)
		}
		return m, m.bridge.RequestDismiss()
	}

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.helpText = renderHelp(helpMarkdown(m.keys), m.panelWidth())
		}
		return m, nil
	}

	if m.showHelp {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.refocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Dimmer):
		return m, m.adjustBrightness(-brightnessStep)

	case key.Matches(msg, m.keys.Brighter):
		return m, m.adjustBrightness(brightnessStep)
	}

	if r := m.focusedRow(); r != nil {
		return m, r.option.Update(msg)
	}
	return m, nil
}

// handleMouse focuses the row under a left click and lets it toggle. Clicks
// outside the rows are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	pos, ok := m.rowAt(msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = pos
	m.refocus()
	return m, m.focusedRow().option.Update(msg)
}

// handleFilterKey feeds the filter input while it has focus.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.endFilter(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	m.refocus()
	return m, cmd
}

// endFilter leaves filter mode, optionally clearing the query.
func (m *Model) endFilter(clear bool) {
	m.filtering = false
	m.filter.Blur()
	if clear {
		m.filter.SetValue("")
	}
	m.applyFilter()
	m.refocus()
}

// adjustBrightness asks the host to move the focused display by delta.
func (m Model) adjustBrightness(delta int) tea.Cmd {
	r := m.focusedRow()
	if r == nil {
		return nil
	}
	d, ok := m.bridge.State().Monitor(r.id)
	if !ok {
		return nil
	}
	return m.bridge.RequestBrightness(d.ID, d.Brightness+delta)
}

// startReveal begins the reveal animation the first time the panel is visible.
func (m *Model) startReveal() tea.Cmd {
	if m.revealStarted || !m.bridge.Document().Visible {
		return nil
	}
	m.revealStarted = true
	return revealTickCmd(1, revealFrameDelay)
}

// handleRevealTick advances the animation. The last frame notifies the host
// page lifecycle and the host itself.
func (m Model) handleRevealTick(msg revealTickMsg) (tea.Model, tea.Cmd) {
	if m.revealed {
		return m, nil
	}
	m.revealFrame = msg.frame
	if msg.frame < revealFrames {
		return m, revealTickCmd(msg.frame+1, revealFrameDelay)
	}

	m.revealed = true
	m.bridge.AnimationDone()
	return m, m.bridge.PanelReady()
}
