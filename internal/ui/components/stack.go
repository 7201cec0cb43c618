package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction. Children that render to an
// empty string take no space.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		align:         lipgloss.Left,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack aligned to the top.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal).WithAlign(lipgloss.Top)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)
	} else {
		content = s.join(views, strings.Repeat("\n", s.gap), lipgloss.JoinVertical)
	}
	return s.ComputeStyle(ctx.Theme).Render(content)
}

func (s *Stack) join(views []string, spacer string, joiner func(lipgloss.Position, ...string) string) string {
	if s.gap == 0 {
		return joiner(s.align, views...)
	}
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return joiner(s.align, result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(pos lipgloss.Position) *Stack {
	s.align = pos
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
