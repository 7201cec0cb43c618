package bridge

import (
	"maps"

	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
)

// Position is the panel window's screen position.
type Position struct {
	X int
	Y int
}

// Wallpaper is the metadata returned for get-mica-wallpaper.
type Wallpaper struct {
	Path   string
	Width  int
	Height int
}

// SettingIsWin11 is the settings key that carries the platform flag.
const SettingIsWin11 = "isWin11"

// ViewState is the single piece of shared state behind the panel. Only the
// bridge mutates it; everything else reads copies. Every mutation bumps the
// version so renderers can tell whether anything changed.
type ViewState struct {
	version    uint64
	monitors   []monitor.Descriptor
	position   Position
	isWin11    bool
	accent     string
	settings   map[string]any
	refreshing bool
	wallpaper  Wallpaper
	strings    map[string]string
}

// NewViewState returns an empty state with an initialized settings map.
func NewViewState() *ViewState {
	return &ViewState{
		settings: map[string]any{},
		strings:  map[string]string{},
	}
}

func (s *ViewState) Version() uint64 { return s.version }

// Monitors returns a copy of the current display list in host order.
func (s *ViewState) Monitors() []monitor.Descriptor { return monitor.Clone(s.monitors) }

// Monitor looks a display up by id.
func (s *ViewState) Monitor(id string) (monitor.Descriptor, bool) {
	for _, d := range s.monitors {
		if d.ID == id {
			return d, true
		}
	}
	return monitor.Descriptor{}, false
}

func (s *ViewState) Position() Position   { return s.position }
func (s *ViewState) IsWin11() bool        { return s.isWin11 }
func (s *ViewState) Accent() string       { return s.accent }
func (s *ViewState) Refreshing() bool     { return s.refreshing }

// Wallpaper returns the last wallpaper the host reported. Like the backdrop
// offset it is not drawn in the terminal.
func (s *ViewState) Wallpaper() Wallpaper { return s.wallpaper }

// Settings returns a copy of the settings map.
func (s *ViewState) Settings() map[string]any { return maps.Clone(s.settings) }

// Setting returns one settings value.
func (s *ViewState) Setting(key string) (any, bool) {
	v, ok := s.settings[key]
	return v, ok
}

// Localize returns the host-provided string for key, or fallback.
func (s *ViewState) Localize(key, fallback string) string {
	if v, ok := s.strings[key]; ok && v != "" {
		return v
	}
	return fallback
}

func (s *ViewState) bump() { s.version++ }

func (s *ViewState) setMonitors(list []monitor.Descriptor) {
	s.monitors = monitor.Clone(list)
	s.bump()
}

func (s *ViewState) setPosition(p Position) {
	s.position = p
	s.bump()
}

func (s *ViewState) setAccent(accent string) {
	s.accent = accent
	s.bump()
}

// mergeSettings copies values over the current map. The isWin11 key also
// drives the platform flag.
func (s *ViewState) mergeSettings(values map[string]any) {
	if s.settings == nil {
		s.settings = map[string]any{}
	}
	maps.Copy(s.settings, values)
	if v, ok := values[SettingIsWin11].(bool); ok {
		s.isWin11 = v
	}
	s.bump()
}

func (s *ViewState) setRefreshing(v bool) {
	s.refreshing = v
	s.bump()
}

func (s *ViewState) setWallpaper(w Wallpaper) {
	s.wallpaper = w
	s.bump()
}

func (s *ViewState) setStrings(strs map[string]string) {
	s.strings = maps.Clone(strs)
	if s.strings == nil {
		s.strings = map[string]string{}
	}
	s.bump()
}
