package components

import (
	"strings"
)

const defaultDividerWidth = 40

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the render width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Surface.Muted)
	return style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// Width returns the divider width.
func (d *Divider) Width() int {
	return d.width
}
