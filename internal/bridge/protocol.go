package bridge

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/lumen/internal/domain/monitor"
	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// Direction says which side of the channel may send a kind.
type Direction int

const (
	DirectionOutbound Direction = iota + 1
	DirectionInbound
)

func (d Direction) String() string {
	switch d {
	case DirectionOutbound:
		return "panel → host"
	case DirectionInbound:
		return "host → panel"
	default:
		return "unknown"
	}
}

// Kind is the closed set of messages exchanged with the host.
type Kind int

const (
	KindUnknown Kind = iota

	// Outbound.
	KindGetMicaWallpaper
	KindGetRefreshing
	KindRequestLocalization
	KindBlurPanel
	KindUpdateBrightness
	KindPanelReady

	// Inbound.
	KindWindowPosition
	KindMonitorsUpdated
	KindEnableDemoMode
	KindMicaWallpaper
	KindRefreshing
	KindLocalization
	KindSettingsUpdated
	KindAccentColor

	kindCount
)

var kindTable = [kindCount]struct {
	name string
	dir  Direction
}{
	KindUnknown:             {"unknown", 0},
	KindGetMicaWallpaper:    {"get-mica-wallpaper", DirectionOutbound},
	KindGetRefreshing:       {"get-refreshing", DirectionOutbound},
	KindRequestLocalization: {"request-localization", DirectionOutbound},
	KindBlurPanel:           {"blur-panel", DirectionOutbound},
	KindUpdateBrightness:    {"update-brightness", DirectionOutbound},
	KindPanelReady:          {"panel-ready", DirectionOutbound},
	KindWindowPosition:      {"window-position", DirectionInbound},
	KindMonitorsUpdated:     {"monitors-updated", DirectionInbound},
	KindEnableDemoMode:      {"enable-demo-mode", DirectionInbound},
	KindMicaWallpaper:       {"mica-wallpaper", DirectionInbound},
	KindRefreshing:          {"refreshing", DirectionInbound},
	KindLocalization:        {"localization", DirectionInbound},
	KindSettingsUpdated:     {"settings-updated", DirectionInbound},
	KindAccentColor:         {"accent-color", DirectionInbound},
}

func (k Kind) String() string {
	if k <= KindUnknown || k >= kindCount {
		return "unknown"
	}
	return kindTable[k].name
}

// Direction returns which side sends k.
func (k Kind) Direction() Direction {
	if k <= KindUnknown || k >= kindCount {
		return 0
	}
	return kindTable[k].dir
}

// Kinds lists every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a wire name.
func ParseKind(name string) (Kind, error) {
	for k := KindUnknown + 1; k < kindCount; k++ {
		if kindTable[k].name == name {
			return k, nil
		}
	}
	return KindUnknown, apperrors.NewProtocolError(name, "unknown message kind", nil)
}

// MarshalText writes the wire name.
func (k Kind) MarshalText() ([]byte, error) {
	if k <= KindUnknown || k >= kindCount {
		return nil, apperrors.NewProtocolError("", fmt.Sprintf("cannot encode kind %d", int(k)), nil)
	}
	return []byte(k.String()), nil
}

// UnmarshalText parses the wire name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Envelope is the wire form of every message: one JSON object per line.
type Envelope struct {
	ID      string          `json:"id,omitempty"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Outbound is a request from the panel to the host.
type Outbound struct {
	Kind    Kind
	Payload any
}

// BrightnessRequest asks the host to set one display's level.
type BrightnessRequest struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
}

// Request builds a payload-less outbound message.
func Request(kind Kind) Outbound {
	return Outbound{Kind: kind}
}

// SetBrightness builds an update-brightness request.
func SetBrightness(id string, level int) Outbound {
	return Outbound{Kind: KindUpdateBrightness, Payload: BrightnessRequest{ID: id, Level: level}}
}

// Encode wraps out in an envelope with a fresh id.
func Encode(out Outbound) ([]byte, error) {
	if out.Kind.Direction() != DirectionOutbound {
		return nil, apperrors.NewProtocolError(out.Kind.String(), "not an outbound kind", nil)
	}
	env := Envelope{ID: uuid.NewString(), Kind: out.Kind.String()}
	if out.Payload != nil {
		raw, err := json.Marshal(out.Payload)
		if err != nil {
			return nil, apperrors.NewProtocolError(out.Kind.String(), "encode payload", err)
		}
		env.Payload = raw
	}
	return json.Marshal(env)
}

// Inbound is a decoded message from the host. The set of implementations is
// closed: one type per inbound Kind.
type Inbound interface {
	Kind() Kind
	inbound()
}

// WindowPosition reports the panel window's screen position.
type WindowPosition struct {
	X, Y int
}

// MonitorsUpdated carries the host's current display list.
type MonitorsUpdated struct {
	Monitors []monitor.Descriptor
}

// EnableDemoMode switches the panel to the built-in sample displays.
type EnableDemoMode struct{}

// MicaWallpaper answers get-mica-wallpaper.
type MicaWallpaper struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Refreshing answers get-refreshing.
type Refreshing struct {
	Refreshing bool `json:"refreshing"`
}

// Localization answers request-localization.
type Localization struct {
	Strings map[string]string
}

// SettingsUpdated merges host settings into the view state.
type SettingsUpdated struct {
	Settings map[string]any
}

// AccentColor sets the theming accent token.
type AccentColor struct {
	Accent string `json:"accent"`
}

func (WindowPosition) Kind() Kind  { return KindWindowPosition }
func (MonitorsUpdated) Kind() Kind { return KindMonitorsUpdated }
func (EnableDemoMode) Kind() Kind  { return KindEnableDemoMode }
func (MicaWallpaper) Kind() Kind   { return KindMicaWallpaper }
func (Refreshing) Kind() Kind      { return KindRefreshing }
func (Localization) Kind() Kind    { return KindLocalization }
func (SettingsUpdated) Kind() Kind { return KindSettingsUpdated }
func (AccentColor) Kind() Kind     { return KindAccentColor }

func (WindowPosition) inbound()  {}
func (MonitorsUpdated) inbound() {}
func (EnableDemoMode) inbound()  {}
func (MicaWallpaper) inbound()   {}
func (Refreshing) inbound()      {}
func (Localization) inbound()    {}
func (SettingsUpdated) inbound() {}
func (AccentColor) inbound()     {}

// Decode parses one envelope from the host into its typed message.
func Decode(data []byte) (Inbound, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, apperrors.NewProtocolError("", "malformed envelope", err)
	}
	kind, err := ParseKind(env.Kind)
	if err != nil {
		return nil, err
	}
	if kind.Direction() != DirectionInbound {
		return nil, apperrors.NewProtocolError(env.Kind, "not an inbound kind", nil)
	}
	return decodePayload(kind, env.Payload)
}

func decodePayload(kind Kind, raw json.RawMessage) (Inbound, error) {
	bad := func(err error) error {
		return apperrors.NewProtocolError(kind.String(), "malformed payload", err)
	}
	switch kind {
	case KindWindowPosition:
		var pos []float64
		if err := json.Unmarshal(raw, &pos); err != nil {
			return nil, bad(err)
		}
		if len(pos) != 2 {
			return nil, bad(fmt.Errorf("position has %d elements, want 2", len(pos)))
		}
		return WindowPosition{X: int(math.Round(pos[0])), Y: int(math.Round(pos[1]))}, nil
	case KindMonitorsUpdated:
		var list []monitor.Descriptor
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, bad(err)
			}
		}
		return MonitorsUpdated{Monitors: list}, nil
	case KindEnableDemoMode:
		return EnableDemoMode{}, nil
	case KindMicaWallpaper:
		var w MicaWallpaper
		if err := unmarshalOptional(raw, &w); err != nil {
			return nil, bad(err)
		}
		return w, nil
	case KindRefreshing:
		var r Refreshing
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, bad(err)
		}
		return r, nil
	case KindLocalization:
		strs := map[string]string{}
		if err := unmarshalOptional(raw, &strs); err != nil {
			return nil, bad(err)
		}
		return Localization{Strings: strs}, nil
	case KindSettingsUpdated:
		settings := map[string]any{}
		if err := unmarshalOptional(raw, &settings); err != nil {
			return nil, bad(err)
		}
		return SettingsUpdated{Settings: settings}, nil
	case KindAccentColor:
		var a AccentColor
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, bad(err)
		}
		return a, nil
	default:
		return nil, apperrors.NewProtocolError(kind.String(), "no decoder for kind", nil)
	}
}

func unmarshalOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
