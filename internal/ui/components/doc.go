// Package components is the terminal component library the panel is built
// from.
//
// # Rendering
//
// Every component implements ui.Renderable. ViewWithContext receives a
// RenderContext carrying the Theme, the available width and a logger:
//
//	ctx := components.DefaultContext().
//		WithTheme(components.DefaultTheme().WithAccent("#0078D4")).
//		WithWidth(60)
//	out := option.ViewWithContext(ctx)
//
// View renders with DefaultContext.
//
// # Themes
//
// A Theme is an immutable value: a Palette of ColourSets (Accent, Surface,
// Text, Danger), a typography scale and named style classes. WithAccent
// returns a copy whose accent slot follows the host's accent colour.
// StyleFuncs such as Foreground, Background and Class apply theme data to a
// lipgloss.Style and are attached through WithAppliers.
//
// # Settings rows
//
// Option is the expandable settings row. Its OptionConfig fills named slots
// (icon, title, description, content, input) and a children region that is
// drawn while the row is expanded. Each Option owns its expand state; only
// Toggle changes it. OptionChild is the nested row: the same slots with no
// expand affordance.
//
// Option renders through a Barrier, so a panic in any slot is contained to
// that row and replaced by a fallback marker until SetConfig is called.
//
// # Icons
//
// Icons are a closed IconID enumeration. Glyph returns the terminal glyph;
// unknown values render FallbackGlyph.
//
// # Status
//
// Header, Divider, Badge and Alert cover the panel chrome and host status
// messages. Meter is the brightness input shown in a row's input slot.
package components
