// Package ui holds the rendering contracts shared by the component library and
// the panel composition.
package ui

// Renderable is anything that can draw itself into a terminal frame.
type Renderable interface {
	View() string
}

// FallibleRenderable is a Renderable whose content can fail without panicking.
// Containers that isolate failures prefer RenderE over View when it is available.
type FallibleRenderable interface {
	Renderable
	RenderE() (string, error)
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View calls f.
func (f RenderFunc) View() string {
	return f()
}

// Static is a Renderable that always renders the same string.
type Static string

// View returns the string unchanged.
func (s Static) View() string {
	return string(s)
}
