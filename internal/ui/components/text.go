package components

import (
	"github.com/charmbracelet/x/ansi"
)

// Text renders a single styled string, truncated to the context width.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	if t.content == "" {
		return ""
	}
	content := t.content
	if ctx.Width > 0 {
		content = ansi.Truncate(content, ctx.Width, "…")
	}
	return t.ComputeStyle(ctx.Theme).Render(content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// DescriptionText creates secondary text using theme typography.
func DescriptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantDescription))
}
