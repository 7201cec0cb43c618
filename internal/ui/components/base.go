package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/ui"
)

// BaseComponent provides common styling behaviour. Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling is applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component under theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions to the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	existing, ok := b.strategy.(CompositeStrategy)
	if !ok {
		current := b.strategy
		existing = CompositeStrategy{funcs: []StyleFunc{func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if current != nil {
				return current.Apply(base, theme)
			}
			return base
		}}}
	}
	funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
	copy(funcs, existing.funcs)
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// RenderContext carries the theme and layout facts down the component tree.
type RenderContext struct {
	Theme Theme
	// Width is the number of cells available; zero means unconstrained.
	Width int
	// Log receives failures contained by barriers. May be nil.
	Log *logger.Logger
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a new context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	if width < 0 {
		width = 0
	}
	r.Width = width
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// ContextFunc adapts a context-aware render function to ContextualRenderable.
type ContextFunc func(ctx RenderContext) string

// View renders with DefaultContext.
func (f ContextFunc) View() string {
	return f(DefaultContext())
}

// ViewWithContext calls f.
func (f ContextFunc) ViewWithContext(ctx RenderContext) string {
	return f(ctx)
}

// render draws r with ctx when it understands contexts, plainly otherwise.
// A FallibleRenderable is drawn through RenderE; its error is raised as a
// panic so the nearest Barrier records it.
func render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if fallible, ok := r.(ui.FallibleRenderable); ok {
		view, err := fallible.RenderE()
		if err != nil {
			panic(err)
		}
		return view
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}
