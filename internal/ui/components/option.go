package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/ui"
)

// OptionKeyMap holds the bindings an Option reacts to while focused.
type OptionKeyMap struct {
	Toggle key.Binding
}

// DefaultOptionKeys returns the standard toggle bindings.
func DefaultOptionKeys() OptionKeyMap {
	return OptionKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand"),
		),
	}
}

// rowChrome is the border plus horizontal padding drawn around a row.
const rowChrome = 4

// Option is an expandable settings row. It owns its expand state: the state
// starts at OptionConfig.StartExpanded and only Toggle changes it. The whole
// row renders behind a Barrier so a failing slot cannot take the list down.
type Option struct {
	BaseComponent
	cfg      OptionConfig
	children []ui.Renderable
	expanded bool
	focused  bool
	keys     OptionKeyMap
	barrier  *Barrier
}

// NewOption creates an expandable row with optional nested children.
func NewOption(cfg OptionConfig, children ...ui.Renderable) *Option {
	o := &Option{
		BaseComponent: NewBaseComponent(),
		cfg:           cfg,
		children:      children,
		expanded:      cfg.StartExpanded,
		keys:          DefaultOptionKeys(),
	}
	o.barrier = NewBarrier("option:"+cfg.Title, ContextFunc(o.draw))
	return o
}

// Config returns the current configuration.
func (o *Option) Config() OptionConfig {
	return o.cfg
}

// SetConfig replaces the configuration and children. The expand state is kept
// and any contained render failure is cleared so the row is drawn afresh.
func (o *Option) SetConfig(cfg OptionConfig, children ...ui.Renderable) {
	o.cfg = cfg
	o.children = children
	o.barrier = NewBarrier("option:"+cfg.Title, ContextFunc(o.draw))
}

// WithKeys overrides the toggle bindings.
func (o *Option) WithKeys(keys OptionKeyMap) *Option {
	o.keys = keys
	return o
}

// Expanded reports the row's expand state.
func (o *Option) Expanded() bool {
	return o.expanded
}

// ChildrenVisible reports whether the children region is rendered.
func (o *Option) ChildrenVisible() bool {
	return o.expanded || o.cfg.ForceExpandable
}

// Toggle flips the expand state.
func (o *Option) Toggle() {
	o.expanded = !o.expanded
}

// Focus marks the row as the target of key input.
func (o *Option) Focus() {
	o.focused = true
}

// Blur removes key focus.
func (o *Option) Blur() {
	o.focused = false
}

// Focused reports whether the row has key focus.
func (o *Option) Focused() bool {
	return o.focused
}

// Failed reports whether the row is currently showing the fallback.
func (o *Option) Failed() bool {
	return o.barrier.Failed()
}

// Update toggles the row when it is focused, has the expand affordance and
// receives the toggle key or a left click.
func (o *Option) Update(msg tea.Msg) tea.Cmd {
	if !o.focused || !o.cfg.Expandable {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, o.keys.Toggle) {
			o.Toggle()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			o.Toggle()
		}
	}
	return nil
}

// Regions returns the rendered regions in display order. Slots whose
// configuration is empty are absent.
func (o *Option) Regions(ctx RenderContext) []Region {
	icon, body, input := slotLayout(o.cfg, ctx, false, o.expandWidth())

	regions := make([]Region, 0, 7)
	if o.cfg.Icon != IconNone {
		regions = append(regions, icon)
	}
	regions = append(regions, body...)
	if o.cfg.Input != nil {
		regions = append(regions, input)
	}
	if o.cfg.Expandable {
		regions = append(regions, Region{Slot: SlotExpand, View: o.expandGlyph(ctx)})
	}
	if o.ChildrenVisible() {
		regions = append(regions, Region{Slot: SlotChildren, View: o.childrenView(ctx)})
	}
	return regions
}

// View renders with DefaultContext.
func (o *Option) View() string {
	return o.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row through its barrier.
func (o *Option) ViewWithContext(ctx RenderContext) string {
	return o.barrier.ViewWithContext(ctx)
}

func (o *Option) draw(ctx RenderContext) string {
	inner := ctx
	if ctx.Width > 0 {
		inner = ctx.WithWidth(max(ctx.Width-rowChrome, 1))
	}

	var parent, body, children []ui.Renderable
	var trailing []Region
	for _, r := range o.Regions(inner) {
		switch r.Slot {
		case SlotIcon:
			parent = append(parent, ui.Static(r.View))
		case SlotTitle, SlotDescription, SlotContent:
			body = append(body, ui.Static(r.View))
		case SlotInput, SlotExpand:
			trailing = append(trailing, r)
		case SlotChildren:
			children = append(children, ui.Static(r.View))
		}
	}

	bodyView := VStack(body...).ViewWithContext(inner)
	if inner.Width > 0 {
		fixed := 0
		for _, p := range parent {
			fixed += lipgloss.Width(p.View()) + 1
		}
		for _, r := range trailing {
			fixed += lipgloss.Width(r.View) + 1
		}
		bodyView = lipgloss.NewStyle().Width(max(inner.Width-fixed, 1)).Render(bodyView)
	}
	parent = append(parent, ui.Static(bodyView))
	parent = append(parent, views(trailing)...)

	rows := []ui.Renderable{HStack(parent...).WithGap(1)}
	rows = append(rows, children...)

	style := Border(BorderVariantRounded, PaletteSurface)(o.ComputeStyle(ctx.Theme), ctx.Theme)
	if o.focused {
		style = style.BorderForeground(ctx.Theme.Palette.Accent.Base)
	}
	style = PaddingX(1)(style, ctx.Theme)
	for _, fn := range classAppliers(o.cfg.Classes) {
		style = fn(style, ctx.Theme)
	}
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - 2)
	}
	return style.Render(VStack(rows...).ViewWithContext(inner))
}

func (o *Option) expandGlyph(ctx RenderContext) string {
	icon := IconChevronDown
	if o.expanded {
		icon = IconChevronUp
	}
	return NewText(icon.Glyph()).WithAppliers(Typography(TypographyVariantDescription)).ViewWithContext(ctx.WithWidth(0))
}

func (o *Option) expandWidth() int {
	if !o.cfg.Expandable {
		return 0
	}
	return 2
}

func (o *Option) childrenView(ctx RenderContext) string {
	if len(o.children) == 0 {
		return ""
	}
	childCtx := ctx
	if ctx.Width > 0 {
		childCtx = ctx.WithWidth(max(ctx.Width-2, 1))
	}
	lines := make([]string, 0, len(o.children))
	for _, child := range o.children {
		if view := render(child, childCtx); view != "" {
			lines = append(lines, view)
		}
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(lines, "\n"))
}
