package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small inline tag, such as the control protocol of a display.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantAccent
	BadgeVariantMuted
	BadgeVariantDanger
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	if b.text == "" {
		return ""
	}
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Padding(0, 1)

	switch b.variant {
	case BadgeVariantAccent:
		set := theme.Palette.Accent
		return style.Background(set.Base).Foreground(set.OnBase)
	case BadgeVariantMuted:
		return style.Foreground(theme.Palette.Text.Muted)
	case BadgeVariantDanger:
		set := theme.Palette.Danger
		return style.Background(set.Muted).Foreground(set.Base)
	default:
		set := theme.Palette.Surface
		return style.Background(set.Muted).Foreground(set.OnBase)
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantAccent)
}

// MutedBadge creates a muted badge.
func MutedBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantMuted)
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDanger)
}
