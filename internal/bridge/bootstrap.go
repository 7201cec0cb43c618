package bridge

import (
	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
)

// Bootstrap is the state the host publishes before the panel starts: accent,
// platform flag, initial monitors, window position and settings.
type Bootstrap struct {
	Accent   string               `yaml:"accent" json:"accent"`
	IsWin11  *bool                `yaml:"isWin11" json:"isWin11"`
	Monitors []monitor.Descriptor `yaml:"monitors" json:"monitors"`
	Position []int                `yaml:"position" json:"position"`
	Settings map[string]any       `yaml:"settings" json:"settings"`
}

// Messages translates the bootstrap into the inbound messages that would
// produce the same state. Settings come first so the platform flag is known
// before the position is applied.
func (b Bootstrap) Messages() []Inbound {
	var out []Inbound

	settings := make(map[string]any, len(b.Settings)+1)
	for k, v := range b.Settings {
		settings[k] = v
	}
	if b.IsWin11 != nil {
		settings[SettingIsWin11] = *b.IsWin11
	}
	if len(settings) > 0 {
		out = append(out, SettingsUpdated{Settings: settings})
	}
	if b.Accent != "" {
		out = append(out, AccentColor{Accent: b.Accent})
	}
	if len(b.Position) == 2 {
		out = append(out, WindowPosition{X: b.Position[0], Y: b.Position[1]})
	}
	if b.Monitors != nil {
		out = append(out, MonitorsUpdated{Monitors: monitor.Clone(b.Monitors)})
	}
	return out
}
