package components

import (
	"fmt"
	"strings"
)

// IconID identifies one of the glyphs the component library can draw. Icons are
// a closed set: configuration selects an entry, it never supplies markup.
type IconID int

const (
	IconNone IconID = iota
	IconMonitor
	IconBrightness
	IconChevronDown
	IconChevronUp
	IconSettings
	IconInfo
	IconWarning
	IconPower
	IconRefresh
	iconCount
)

// FallbackGlyph is drawn for identifiers outside the known set.
const FallbackGlyph = "□"

var iconTable = [iconCount]struct {
	name      string
	glyph     string
	codePoint rune
}{
	IconNone:        {"none", "", 0},
	IconMonitor:     {"monitor", "▭", 0xE7F4},
	IconBrightness:  {"brightness", "☀", 0xE706},
	IconChevronDown: {"chevron-down", "▾", 0xE70D},
	IconChevronUp:   {"chevron-up", "▴", 0xE70E},
	IconSettings:    {"settings", "⚙", 0xE713},
	IconInfo:        {"info", "ℹ", 0xE946},
	IconWarning:     {"warning", "⚠", 0xE7BA},
	IconPower:       {"power", "⏻", 0xE7E8},
	IconRefresh:     {"refresh", "↻", 0xE72C},
}

// Valid reports whether id is a known, drawable icon.
func (id IconID) Valid() bool {
	return id > IconNone && id < iconCount
}

// Glyph returns the fixed glyph for id. Unknown identifiers get FallbackGlyph
// and IconNone gets the empty string.
func (id IconID) Glyph() string {
	if id == IconNone {
		return ""
	}
	if !id.Valid() {
		return FallbackGlyph
	}
	return iconTable[id].glyph
}

func (id IconID) String() string {
	if id == IconNone || id.Valid() {
		return iconTable[id].name
	}
	return fmt.Sprintf("icon(%d)", int(id))
}

// ParseIcon resolves an icon by name, case-insensitively.
func ParseIcon(name string) (IconID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id := IconNone + 1; id < iconCount; id++ {
		if iconTable[id].name == name {
			return id, nil
		}
	}
	return IconNone, fmt.Errorf("unknown icon %q", name)
}

// IconFromCodePoint maps a Segoe MDL2 code point, as sent by hosts that still
// speak in font code points, onto the known set.
func IconFromCodePoint(cp rune) (IconID, bool) {
	for id := IconNone + 1; id < iconCount; id++ {
		if iconTable[id].codePoint == cp {
			return id, true
		}
	}
	return IconNone, false
}

// UnmarshalText lets icons be named in YAML and JSON documents.
func (id *IconID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*id = IconNone
		return nil
	}
	parsed, err := ParseIcon(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText writes the icon's name.
func (id IconID) MarshalText() ([]byte, error) {
	if id != IconNone && !id.Valid() {
		return nil, fmt.Errorf("unknown icon %d", int(id))
	}
	return []byte(iconTable[id].name), nil
}
