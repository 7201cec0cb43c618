package panel

import (
	"fmt"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
	"github.com/alexisbeaulieu97/lumen/internal/ui"
	"github.com/alexisbeaulieu97/lumen/internal/ui/components"
)

const meterWidth = 16

// monitorRow pairs a display id with the option that renders it.
type monitorRow struct {
	id     string
	name   string
	option *components.Option
}

// syncRows rebuilds the row list from the current monitors. Rows are reused
// by display id so their expand state survives a refresh; rows for displays
// that disappeared are dropped.
func syncRows(existing []*monitorRow, list []monitor.Descriptor, st *bridge.ViewState) []*monitorRow {
	byID := make(map[string]*monitorRow, len(existing))
	for _, r := range existing {
		byID[r.id] = r
	}

	rows := make([]*monitorRow, 0, len(list))
	for _, d := range list {
		cfg, children := rowConfig(d, st)
		if r, ok := byID[d.ID]; ok {
			r.name = d.DisplayName()
			r.option.SetConfig(cfg, children...)
			rows = append(rows, r)
			continue
		}
		rows = append(rows, &monitorRow{
			id:     d.ID,
			name:   d.DisplayName(),
			option: components.NewOption(cfg, children...),
		})
	}
	return rows
}

// rowConfig describes one display as a settings row with detail children.
func rowConfig(d monitor.Descriptor, st *bridge.ViewState) (components.OptionConfig, []ui.Renderable) {
	adjustable := d.Type == "" || d.Type.Adjustable()

	cfg := components.OptionConfig{
		Title:      d.DisplayName(),
		Icon:       components.IconMonitor,
		Expandable: true,
	}
	if adjustable {
		cfg.Input = components.NewMeter(d.Brightness, d.Min, d.Max).WithWidth(meterWidth)
	} else {
		cfg.Description = st.Localize("monitor.notAdjustable", "Brightness cannot be changed")
		cfg.Classes = []string{"muted"}
	}

	protocol := components.AccentBadge(protocolLabel(d, st))
	if !adjustable {
		protocol = components.DangerBadge(protocolLabel(d, st))
	}

	children := []ui.Renderable{
		components.NewOptionChild(components.OptionConfig{
			Title: st.Localize("monitor.protocol", "Protocol"),
			Icon:  components.IconSettings,
			Input: protocol,
		}),
		components.NewOptionChild(components.OptionConfig{
			Title: st.Localize("monitor.range", "Range"),
			Icon:  components.IconBrightness,
			Input: components.NewText(fmt.Sprintf("%d–%d", d.Min, d.Max)),
		}),
		components.NewOptionChild(components.OptionConfig{
			Title:       st.Localize("monitor.device", "Device"),
			Icon:        components.IconInfo,
			Description: deviceLabel(d),
			Classes:     []string{"compact"},
		}),
	}
	return cfg, children
}

func protocolLabel(d monitor.Descriptor, st *bridge.ViewState) string {
	if d.Type == "" {
		return st.Localize("protocol.unknown", "Unknown")
	}
	return st.Localize("protocol."+string(d.Type), d.Type.Label())
}

func deviceLabel(d monitor.Descriptor) string {
	if d.Device != "" {
		return d.Device
	}
	return d.ID
}
