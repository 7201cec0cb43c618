package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lumen/internal/ui"
)

func slotsOf(regions []Region) []Slot {
	out := make([]Slot, 0, len(regions))
	for _, r := range regions {
		out = append(out, r.Slot)
	}
	return out
}

func countSlot(regions []Region, slot Slot) int {
	n := 0
	for _, r := range regions {
		if r.Slot == slot {
			n++
		}
	}
	return n
}

func TestOptionSlotOmission(t *testing.T) {
	full := OptionConfig{
		Title:       "XB270HU",
		Description: "DDC/CI",
		Icon:        IconMonitor,
		Content:     ui.Static("content"),
		Input:       ui.Static("input"),
	}

	tests := []struct {
		name   string
		mutate func(*OptionConfig)
		absent Slot
	}{
		{name: "no title", mutate: func(c *OptionConfig) { c.Title = "" }, absent: SlotTitle},
		{name: "no icon", mutate: func(c *OptionConfig) { c.Icon = IconNone }, absent: SlotIcon},
		{name: "no description", mutate: func(c *OptionConfig) { c.Description = "" }, absent: SlotDescription},
		{name: "no content", mutate: func(c *OptionConfig) { c.Content = nil }, absent: SlotContent},
		{name: "no input", mutate: func(c *OptionConfig) { c.Input = nil }, absent: SlotInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := full
			tt.mutate(&cfg)

			for _, regions := range [][]Region{
				NewOption(cfg).Regions(DefaultContext()),
				NewOptionChild(cfg).Regions(DefaultContext()),
			} {
				assert.Zero(t, countSlot(regions, tt.absent))
				for _, present := range []Slot{SlotIcon, SlotTitle, SlotDescription, SlotContent, SlotInput} {
					if present == tt.absent {
						continue
					}
					assert.Equal(t, 1, countSlot(regions, present), "slot %s", present)
				}
			}
		})
	}
}

func TestOptionRegionOrder(t *testing.T) {
	cfg := OptionConfig{
		Title:         "Brightness",
		Description:   "All displays",
		Icon:          IconBrightness,
		Content:       ui.Static("x"),
		Input:         ui.Static("y"),
		Expandable:    true,
		StartExpanded: true,
	}
	opt := NewOption(cfg, ui.Static("child"))

	assert.Equal(t,
		[]Slot{SlotIcon, SlotTitle, SlotDescription, SlotContent, SlotInput, SlotExpand, SlotChildren},
		slotsOf(opt.Regions(DefaultContext())))
}

func TestOptionToggleIsNegation(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Display", Expandable: true}, ui.Static("child"))
	require.False(t, opt.Expanded())
	assert.Zero(t, countSlot(opt.Regions(DefaultContext()), SlotChildren))

	opt.Toggle()
	assert.True(t, opt.Expanded())
	assert.Equal(t, 1, countSlot(opt.Regions(DefaultContext()), SlotChildren))
	assert.Contains(t, opt.View(), "child")

	opt.Toggle()
	assert.False(t, opt.Expanded())
	assert.NotContains(t, opt.View(), "child")
}

func TestOptionStartExpanded(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Display", StartExpanded: true})
	assert.True(t, opt.Expanded())
}

func TestOptionForceExpandableKeepsChildren(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Display", ForceExpandable: true}, ui.Static("always"))

	for i := 0; i < 3; i++ {
		assert.True(t, opt.ChildrenVisible())
		assert.Equal(t, 1, countSlot(opt.Regions(DefaultContext()), SlotChildren))
		assert.Contains(t, opt.View(), "always")
		opt.Toggle()
	}
}

func TestOptionExpandStateIsPerInstance(t *testing.T) {
	cfg := OptionConfig{Title: "Display", Expandable: true}
	a := NewOption(cfg)
	b := NewOption(cfg)

	a.Toggle()
	assert.True(t, a.Expanded())
	assert.False(t, b.Expanded())
}

func TestOptionSetConfigKeepsExpandState(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Old", Expandable: true})
	opt.Toggle()

	opt.SetConfig(OptionConfig{Title: "New", Expandable: true, StartExpanded: false})
	assert.True(t, opt.Expanded())
	assert.Equal(t, "New", opt.Config().Title)
}

func TestOptionUpdateRequiresFocus(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Display", Expandable: true})
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	opt.Update(enter)
	assert.False(t, opt.Expanded(), "unfocused row ignores keys")

	opt.Focus()
	opt.Update(enter)
	assert.True(t, opt.Expanded())

	opt.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, opt.Expanded())

	opt.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, opt.Expanded())

	opt.Blur()
	opt.Update(enter)
	assert.True(t, opt.Expanded())
}

func TestOptionUpdateIgnoredWithoutAffordance(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Display"})
	opt.Focus()
	opt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, opt.Expanded())
	assert.Zero(t, countSlot(opt.Regions(DefaultContext()), SlotExpand))
}

func TestOptionViewRespectsWidth(t *testing.T) {
	opt := NewOption(OptionConfig{
		Title:      strings.Repeat("very long monitor name ", 10),
		Input:      NewMeter(50, 0, 100),
		Expandable: true,
	})
	ctx := DefaultContext().WithWidth(60)

	for _, line := range strings.Split(opt.ViewWithContext(ctx), "\n") {
		assert.LessOrEqual(t, lipglossWidth(line), 60)
	}
}

func TestOptionChildRendersChildrenUnconditionally(t *testing.T) {
	child := NewOptionChild(OptionConfig{Title: "Range", Expandable: true}, ui.Static("0 – 100"))

	regions := child.Regions(DefaultContext())
	assert.Equal(t, []Slot{SlotTitle, SlotChildren}, slotsOf(regions))
	assert.Contains(t, child.View(), "0 – 100")
	assert.Zero(t, countSlot(regions, SlotExpand))
}

func TestOptionChildWithoutChildrenHasNoChildrenRegion(t *testing.T) {
	child := NewOptionChild(OptionConfig{Title: "Range"})
	assert.Zero(t, countSlot(child.Regions(DefaultContext()), SlotChildren))
}

func TestOptionNestsChildRows(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "DELL U2415", Expandable: true, StartExpanded: true},
		NewOptionChild(OptionConfig{Title: "Protocol", Description: "DDC/CI"}),
		NewOptionChild(OptionConfig{Title: "Range", Input: ui.Static("0–100")}),
	)

	view := opt.ViewWithContext(DefaultContext().WithWidth(70))
	assert.Contains(t, view, "Protocol")
	assert.Contains(t, view, "DDC/CI")
	assert.Contains(t, view, "0–100")
}

func TestOptionContainsFallibleSlots(t *testing.T) {
	cause := errors.New("no data")
	tests := []struct {
		name string
		cfg  OptionConfig
	}{
		{name: "content", cfg: OptionConfig{Title: "Row", Content: failingContent{err: cause}}},
		{name: "input", cfg: OptionConfig{Title: "Row", Input: failingContent{err: cause}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := NewOption(tt.cfg)

			view := opt.View()
			assert.True(t, opt.Failed())
			assert.Contains(t, view, BarrierFallback)
			assert.NotContains(t, view, "never")
			assert.ErrorIs(t, opt.barrier.Err(), cause)
		})
	}
}

func TestOptionFallibleSlotRendersWhenHealthy(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Row", Content: failingContent{}})

	view := opt.View()
	assert.False(t, opt.Failed())
	assert.NotContains(t, view, "never", "RenderE is preferred over View")
	assert.Contains(t, view, "Row")
}
