package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	if m.showHelp {
		return m.helpText
	}

	ctx := m.renderContext()
	st := m.bridge.State()

	if !m.bridge.Document().Visible {
		out := waitingStyle.Render(st.Localize("panel.waiting", "Waiting for the host…"))
		if m.status != nil {
			out = lipgloss.JoinVertical(lipgloss.Left, out, m.status.ViewWithContext(ctx))
		}
		return out
	}

	sections := []string{
		m.renderHeader(ctx),
		components.NewDivider().ViewWithContext(ctx),
	}
	if m.status != nil {
		sections = append(sections, m.status.ViewWithContext(ctx))
	}
	sections = append(sections, m.renderRows(ctx))
	if m.filtering || m.filter.Value() != "" {
		sections = append(sections, filterStyle.Render(m.filter.View()))
	}
	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	return m.clipToReveal(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader renders the title and a one-line summary
func (m Model) renderHeader(ctx components.RenderContext) string {
	st := m.bridge.State()

	icon := components.IconBrightness
	subtitle := fmt.Sprintf("%d %s", len(m.rows), st.Localize("panel.displays", "displays"))
	if st.Refreshing() {
		icon = components.IconRefresh
		subtitle = st.Localize("panel.refreshing", "Refreshing…")
	}

	return components.NewHeader(st.Localize("panel.title", "Brightness")).
		WithIcon(icon).
		WithSubtitle(subtitle).
		ViewWithContext(ctx)
}

// renderRows renders one option per visible display
func (m Model) renderRows(ctx components.RenderContext) string {
	st := m.bridge.State()
	if len(m.rows) == 0 {
		return emptyStyle.Render(st.Localize("panel.noDisplays", "No displays found"))
	}
	if len(m.visible) == 0 {
		return emptyStyle.Render(st.Localize("panel.noMatch", "No display matches the filter"))
	}

	views := make([]string, 0, len(m.visible))
	for _, idx := range m.visible {
		views = append(views, m.rows[idx].option.ViewWithContext(ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// rowAt maps a screen line to a position in the visible rows. It walks the
// same sections View draws above the rows.
func (m Model) rowAt(y int) (int, bool) {
	if y < 0 || len(m.visible) == 0 || !m.bridge.Document().Visible {
		return 0, false
	}
	if frame := m.View(); frame == "" || y >= lipgloss.Height(frame) {
		return 0, false
	}

	ctx := m.renderContext()
	top := lipgloss.Height(m.renderHeader(ctx)) + lipgloss.Height(components.NewDivider().ViewWithContext(ctx))
	if m.status != nil {
		top += lipgloss.Height(m.status.ViewWithContext(ctx))
	}
	for pos, idx := range m.visible {
		h := lipgloss.Height(m.rows[idx].option.ViewWithContext(ctx))
		if y >= top && y < top+h {
			return pos, true
		}
		top += h
	}
	return 0, false
}

// clipToReveal shows the top part of the frame while the reveal animation runs.
func (m Model) clipToReveal(frame string) string {
	if m.revealed || !m.revealStarted {
		return frame
	}
	lines := strings.Split(frame, "\n")
	n := len(lines) * m.revealFrame / revealFrames
	return strings.Join(lines[:n], "\n")
}
