package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/ui"
)

// OptionChild is the non-expandable leaf row nested inside an Option. It has
// the same slots minus the expand affordance, renders everything it is given
// every time, and relies on the enclosing Option for failure containment.
// Expandable, ForceExpandable and StartExpanded are ignored.
type OptionChild struct {
	BaseComponent
	cfg      OptionConfig
	children []ui.Renderable
}

// NewOptionChild creates a leaf row.
func NewOptionChild(cfg OptionConfig, children ...ui.Renderable) *OptionChild {
	return &OptionChild{
		BaseComponent: NewBaseComponent(),
		cfg:           cfg,
		children:      children,
	}
}

// Config returns the row configuration.
func (c *OptionChild) Config() OptionConfig {
	return c.cfg
}

// Regions returns the rendered regions in display order. Nested children sit
// in the content area after the content slot.
func (c *OptionChild) Regions(ctx RenderContext) []Region {
	icon, body, input := slotLayout(c.cfg, ctx, true, 0)

	regions := make([]Region, 0, 6)
	if c.cfg.Icon != IconNone {
		regions = append(regions, icon)
	}
	regions = append(regions, body...)
	if len(c.children) > 0 {
		regions = append(regions, Region{Slot: SlotChildren, View: VStack(c.children...).ViewWithContext(ctx)})
	}
	if c.cfg.Input != nil {
		regions = append(regions, input)
	}
	return regions
}

// View renders with DefaultContext.
func (c *OptionChild) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row.
func (c *OptionChild) ViewWithContext(ctx RenderContext) string {
	var lead, body, trailing []ui.Renderable
	for _, r := range c.Regions(ctx) {
		switch r.Slot {
		case SlotIcon:
			lead = append(lead, ui.Static(r.View))
		case SlotInput:
			trailing = append(trailing, ui.Static(r.View))
		default:
			body = append(body, ui.Static(r.View))
		}
	}

	bodyView := VStack(body...).ViewWithContext(ctx)
	if ctx.Width > 0 {
		fixed := 0
		for _, r := range lead {
			fixed += lipgloss.Width(r.View()) + 1
		}
		for _, r := range trailing {
			fixed += lipgloss.Width(r.View()) + 1
		}
		bodyView = lipgloss.NewStyle().Width(max(ctx.Width-fixed, 1)).Render(bodyView)
	}

	row := make([]ui.Renderable, 0, len(lead)+len(trailing)+1)
	row = append(row, lead...)
	row = append(row, ui.Static(bodyView))
	row = append(row, trailing...)

	style := c.ComputeStyle(ctx.Theme)
	for _, fn := range classAppliers(c.cfg.Classes) {
		style = fn(style, ctx.Theme)
	}
	return style.Render(HStack(row...).WithGap(1).ViewWithContext(ctx))
}
