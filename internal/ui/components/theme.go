package components

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is the accent colour used when the host supplies none.
const DefaultAccent = "#744DA9"

// ColourSet is a semantic colour with the colour drawn on top of it and a
// quieter variant for secondary text and idle borders.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Accent  ColourSet
	Surface ColourSet
	Text    ColourSet
	Danger  ColourSet
}

// PaletteSlot selects a colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteText    PaletteSlot = func(p Palette) ColourSet { return p.Text }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantChildTitle
	TypographyVariantDescription
	TypographyVariantGlyph
)

// TypographyScale contains the text presets used by settings rows.
type TypographyScale struct {
	Body        lipgloss.Style
	Title       lipgloss.Style
	ChildTitle  lipgloss.Style
	Description lipgloss.Style
	Glyph       lipgloss.Style
}

// BorderVariant names the borders a theme provides.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
)

// Theme is an immutable set of styling data. Modifiers return copies.
type Theme struct {
	Palette    Palette
	Typography TypographyScale
	Borders    map[BorderVariant]lipgloss.Border
	// Classes maps style-class tokens accepted by settings rows to modifiers.
	// Unknown tokens are ignored.
	Classes map[string]StyleFunc
}

// DefaultTheme returns a dark-and-light adaptive theme using DefaultAccent.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Surface: ColourSet{
			Base:   ac("#f3f3f3", "#202020"),
			OnBase: ac("#1b1b1b", "#f3f3f3"),
			Muted:  ac("#d1d1d1", "#3a3a3a"),
		},
		Text: ColourSet{
			Base:   ac("#1b1b1b", "#ffffff"),
			OnBase: ac("#ffffff", "#1b1b1b"),
			Muted:  ac("#5d5d5d", "#a0a0a0"),
		},
		Danger: ColourSet{
			Base:   ac("#c42b1c", "#ff99a4"),
			OnBase: ac("#ffffff", "#1b1b1b"),
			Muted:  ac("#fde7e9", "#442726"),
		},
	}

	t := Theme{
		Palette: palette,
		Borders: map[BorderVariant]lipgloss.Border{
			BorderVariantNone:    lipgloss.HiddenBorder(),
			BorderVariantNormal:  lipgloss.NormalBorder(),
			BorderVariantRounded: lipgloss.RoundedBorder(),
		},
	}
	t = t.WithAccent(DefaultAccent)
	t.Classes = defaultClasses()
	return t
}

// WithAccent returns a copy of the theme whose accent slot and typography
// follow the given colour token. An empty token keeps DefaultAccent.
func (t Theme) WithAccent(accent string) Theme {
	if accent == "" {
		accent = DefaultAccent
	}
	c := lipgloss.AdaptiveColor{Light: accent, Dark: accent}
	t.Palette.Accent = ColourSet{
		Base:   c,
		OnBase: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"},
		Muted:  t.Palette.Surface.Muted,
	}
	t.Typography = defaultTypography(t.Palette)
	return t
}

// AccentHex returns the raw accent token, for consumers that take plain strings.
func (t Theme) AccentHex() string {
	return t.Palette.Accent.Base.Dark
}

func defaultTypography(p Palette) TypographyScale {
	return TypographyScale{
		Body:        lipgloss.NewStyle().Foreground(p.Text.Base),
		Title:       lipgloss.NewStyle().Foreground(p.Text.Base).Bold(true),
		ChildTitle:  lipgloss.NewStyle().Foreground(p.Text.Base),
		Description: lipgloss.NewStyle().Foreground(p.Text.Muted),
		Glyph:       lipgloss.NewStyle().Foreground(p.Accent.Base).PaddingRight(1),
	}
}

func defaultClasses() map[string]StyleFunc {
	return map[string]StyleFunc{
		"muted": Foreground(func(p Palette) ColourSet {
			return ColourSet{Base: p.Text.Muted}
		}),
		"danger":  Foreground(PaletteDanger),
		"accent":  Foreground(PaletteAccent),
		"compact": func(base lipgloss.Style, _ Theme) lipgloss.Style { return base.Padding(0) },
	}
}

// TypographyStyle returns the typography preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantChildTitle:
		return typo.ChildTitle
	case TypographyVariantDescription:
		return typo.Description
	case TypographyVariantGlyph:
		return typo.Glyph
	default:
		return typo.Body
	}
}

// BorderForVariant returns the border for variant, or a hidden border.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	if b, ok := theme.Borders[variant]; ok {
		return b
	}
	return lipgloss.HiddenBorder()
}

// Background applies a semantic background colour with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border from the theme, coloured with the slot's muted tone.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).
			BorderForeground(slot(theme.Palette).Muted)
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Class applies the theme modifier registered for token, if any.
func Class(token string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if fn, ok := theme.Classes[token]; ok && fn != nil {
			return fn(base, theme)
		}
		return base
	}
}
