package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultMeterWidth = 20

// Meter is a read-only level indicator used as the input slot of brightness
// rows. Values outside [min, max] are clamped for display.
type Meter struct {
	BaseComponent
	value int
	min   int
	max   int
	width int
}

// NewMeter creates a meter showing value within [min, max].
func NewMeter(value, min, max int) *Meter {
	return &Meter{
		BaseComponent: NewBaseComponent(),
		value:         value,
		min:           min,
		max:           max,
		width:         defaultMeterWidth,
	}
}

// WithWidth sets the bar width in cells.
func (m *Meter) WithWidth(width int) *Meter {
	if width > 0 {
		m.width = width
	}
	return m
}

// Percent returns the value's position in the range as 0..1.
func (m *Meter) Percent() float64 {
	if m.max <= m.min {
		return 0
	}
	v := m.value
	if v < m.min {
		v = m.min
	}
	if v > m.max {
		v = m.max
	}
	return float64(v-m.min) / float64(m.max-m.min)
}

// View renders with DefaultContext.
func (m *Meter) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the bar in the theme's accent colour followed by the value.
func (m *Meter) ViewWithContext(ctx RenderContext) string {
	accent := ctx.Theme.AccentHex()
	bar := progress.New(
		progress.WithSolidFill(accent),
		progress.WithoutPercentage(),
		progress.WithWidth(m.width),
	)
	label := TypographyStyle(ctx.Theme, TypographyVariantBody).Width(4).Align(lipgloss.Right).
		Render(fmt.Sprintf("%d", m.value))
	return m.ComputeStyle(ctx.Theme).Render(bar.ViewAs(m.Percent()) + " " + label)
}
