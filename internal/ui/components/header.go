package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is the panel heading: a title and an optional subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	icon     IconID
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	title := TypographyStyle(ctx.Theme, TypographyVariantTitle).Inherit(style).Render(h.title)
	if h.icon != IconNone {
		glyph := TypographyStyle(ctx.Theme, TypographyVariantGlyph).Render(h.icon.Glyph())
		title = lipgloss.JoinHorizontal(lipgloss.Top, glyph, title)
	}

	if h.subtitle == "" {
		return title
	}

	subtitle := TypographyStyle(ctx.Theme, TypographyVariantDescription).Inherit(style).Render(h.subtitle)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithIcon puts a glyph in front of the title.
func (h *Header) WithIcon(icon IconID) *Header {
	h.icon = icon
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
