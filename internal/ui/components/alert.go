package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colour and icon of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantWarning
	AlertVariantError
)

// Alert is a bordered one-line notice, used for host connection status.
type Alert struct {
	BaseComponent
	message string
	title   string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	if a.message == "" {
		return ""
	}

	line := a.icon().Glyph() + " " + a.message
	var body string
	if a.title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left,
			TypographyStyle(ctx.Theme, TypographyVariantTitle).Render(a.title),
			line,
		)
	} else {
		body = line
	}

	style := a.ComputeStyle(ctx.Theme).
		Border(BorderForVariant(ctx.Theme, BorderVariantRounded)).
		BorderForeground(a.colour(ctx.Theme)).
		Padding(0, 1)
	if ctx.Width > 2 {
		style = style.Width(ctx.Width - 2)
	}
	return style.Render(body)
}

func (a *Alert) icon() IconID {
	switch a.variant {
	case AlertVariantWarning, AlertVariantError:
		return IconWarning
	default:
		return IconInfo
	}
}

func (a *Alert) colour(theme Theme) lipgloss.AdaptiveColor {
	switch a.variant {
	case AlertVariantError:
		return theme.Palette.Danger.Base
	case AlertVariantWarning:
		return theme.Palette.Accent.Base
	default:
		return theme.Palette.Text.Muted
	}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
