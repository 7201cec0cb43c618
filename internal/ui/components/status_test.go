package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBadgeRendersText(t *testing.T) {
	tests := []struct {
		name  string
		badge *Badge
	}{
		{name: "default", badge: NewBadge("DDC/CI")},
		{name: "accent", badge: AccentBadge("DDC/CI")},
		{name: "muted", badge: MutedBadge("DDC/CI")},
		{name: "danger", badge: DangerBadge("DDC/CI")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.badge.View(), "DDC/CI")
			assert.Equal(t, "DDC/CI", tt.badge.Text())
		})
	}

	assert.Empty(t, NewBadge("").View())
}

func TestHeaderWithSubtitleAndIcon(t *testing.T) {
	h := NewHeader("Brightness").WithSubtitle("2 displays").WithIcon(IconBrightness)

	view := h.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Brightness")
	assert.Contains(t, lines[0], IconBrightness.Glyph())
	assert.Contains(t, lines[1], "2 displays")

	assert.NotContains(t, NewHeader("Brightness").View(), "\n")
}

func TestAlertUsesWidthAndGlyph(t *testing.T) {
	ctx := DefaultContext().WithWidth(30)

	view := ErrorAlert("Host disconnected").ViewWithContext(ctx)
	assert.Contains(t, view, "Host disconnected")
	assert.Contains(t, view, IconWarning.Glyph())
	assert.Equal(t, 30, lipgloss.Width(view))

	info := InfoAlert("Connected").WithTitle("Host").View()
	assert.Contains(t, info, IconInfo.Glyph())
	assert.Contains(t, info, "Host")

	assert.Empty(t, NewAlert("").View())
}

func TestDividerFillsWidth(t *testing.T) {
	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))
	assert.Equal(t, 12, lipgloss.Width(NewDivider().ViewWithContext(DefaultContext().WithWidth(12))))
	assert.Equal(t, 5, lipgloss.Width(NewDivider().WithWidth(5).WithChar("=").View()))
	assert.Contains(t, NewDivider().WithWidth(3).WithChar("=").View(), "===")
}
