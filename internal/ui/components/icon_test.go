package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIconGlyphs(t *testing.T) {
	assert.Equal(t, "", IconNone.Glyph())
	assert.Equal(t, "☀", IconBrightness.Glyph())
	assert.Equal(t, "▾", IconChevronDown.Glyph())
	assert.Equal(t, FallbackGlyph, IconID(999).Glyph())
	assert.Equal(t, FallbackGlyph, IconID(-3).Glyph())
	assert.False(t, IconID(999).Valid())
	assert.Equal(t, "icon(999)", IconID(999).String())
}

func TestParseIcon(t *testing.T) {
	id, err := ParseIcon(" Monitor ")
	require.NoError(t, err)
	assert.Equal(t, IconMonitor, id)

	_, err = ParseIcon("<img src=x onerror=alert(1)>")
	assert.Error(t, err)
}

func TestIconFromCodePoint(t *testing.T) {
	id, ok := IconFromCodePoint(0xE70D)
	require.True(t, ok)
	assert.Equal(t, IconChevronDown, id)

	_, ok = IconFromCodePoint(0x3C)
	assert.False(t, ok)
}

func TestIconYAMLRoundTrip(t *testing.T) {
	var doc struct {
		Icon IconID `yaml:"icon"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("icon: brightness\n"), &doc))
	assert.Equal(t, IconBrightness, doc.Icon)

	assert.Error(t, yaml.Unmarshal([]byte("icon: '&#xE70D;'\n"), &doc))
}

func TestUnknownIconRendersFallbackInRow(t *testing.T) {
	opt := NewOption(OptionConfig{Title: "Display", Icon: IconID(42)})
	assert.Contains(t, opt.View(), FallbackGlyph)
}

func TestMeterPercentClamps(t *testing.T) {
	assert.InDelta(t, 0.63, NewMeter(63, 0, 100).Percent(), 0.0001)
	assert.InDelta(t, 1.0, NewMeter(140, 0, 100).Percent(), 0.0001)
	assert.InDelta(t, 0.0, NewMeter(-5, 0, 100).Percent(), 0.0001)
	assert.InDelta(t, 0.5, NewMeter(60, 20, 100).Percent(), 0.0001)
	assert.Zero(t, NewMeter(5, 10, 10).Percent())
	assert.Contains(t, NewMeter(46, 0, 100).View(), "46")
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	assert.Equal(t, "", VStack(NewText(""), NewText("")).View())
	assert.Equal(t, "a\nb", VStack(NewText("a"), NewText(""), NewText("b")).View())
}

func TestThemeWithAccent(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, DefaultAccent, theme.AccentHex())
	assert.Equal(t, "#0078D4", theme.WithAccent("#0078D4").AccentHex())
	assert.Equal(t, DefaultAccent, theme.WithAccent("").AccentHex())
}
