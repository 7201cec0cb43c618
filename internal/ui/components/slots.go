package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/ui"
)

// Slot names a region of a settings row.
type Slot int

const (
	SlotIcon Slot = iota
	SlotTitle
	SlotDescription
	SlotContent
	SlotChildren
	SlotInput
	SlotExpand
)

var slotNames = [...]string{
	SlotIcon:        "option-icon",
	SlotTitle:       "option-title",
	SlotDescription: "option-description",
	SlotContent:     "option-elem",
	SlotChildren:    "option-children",
	SlotInput:       "input-area",
	SlotExpand:      "expand",
}

func (s Slot) String() string {
	if int(s) < 0 || int(s) >= len(slotNames) {
		return "slot"
	}
	return slotNames[s]
}

// Region is one rendered slot of a row.
type Region struct {
	Slot Slot
	View string
}

// OptionConfig is the per-instance configuration of a settings row. Zero
// values mean "absent": an empty Title renders no title region.
type OptionConfig struct {
	Title       string
	Description string
	Icon        IconID
	Content     ui.Renderable
	Input       ui.Renderable
	Classes     []string
	// Expandable shows the expand affordance.
	Expandable bool
	// ForceExpandable keeps the children region rendered while collapsed.
	ForceExpandable bool
	StartExpanded   bool
}

// slotLayout builds the optional regions shared by both row kinds. child
// selects the smaller title preset used by nested rows; reserve is the number
// of cells the caller needs for its own chrome.
func slotLayout(cfg OptionConfig, ctx RenderContext, child bool, reserve int) (icon Region, body []Region, input Region) {
	used := reserve
	if cfg.Icon != IconNone {
		icon = Region{Slot: SlotIcon, View: NewText(cfg.Icon.Glyph()).
			WithAppliers(Typography(TypographyVariantGlyph)).ViewWithContext(ctx.WithWidth(0))}
		used += lipgloss.Width(icon.View)
	}
	if cfg.Input != nil {
		input = Region{Slot: SlotInput, View: render(cfg.Input, ctx)}
		used += lipgloss.Width(input.View) + 1
	}

	textCtx := ctx
	if ctx.Width > 0 {
		textCtx = ctx.WithWidth(max(ctx.Width-used, 1))
	}
	if cfg.Title != "" {
		variant := TypographyVariantTitle
		if child {
			variant = TypographyVariantChildTitle
		}
		body = append(body, Region{Slot: SlotTitle, View: NewText(cfg.Title).
			WithAppliers(Typography(variant)).ViewWithContext(textCtx)})
	}
	if cfg.Description != "" {
		body = append(body, Region{Slot: SlotDescription, View: DescriptionText(cfg.Description).ViewWithContext(textCtx)})
	}
	if cfg.Content != nil {
		body = append(body, Region{Slot: SlotContent, View: render(cfg.Content, textCtx)})
	}
	return icon, body, input
}

// classAppliers turns style-class tokens into theme modifiers.
func classAppliers(classes []string) []StyleFunc {
	appliers := make([]StyleFunc, 0, len(classes))
	for _, token := range classes {
		appliers = append(appliers, Class(token))
	}
	return appliers
}

func views(regions []Region) []ui.Renderable {
	out := make([]ui.Renderable, 0, len(regions))
	for _, r := range regions {
		out = append(out, ui.Static(r.View))
	}
	return out
}
