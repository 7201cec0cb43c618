package monitor

// DemoMonitors returns the fixed pair of displays shown in demo mode. Every
// call returns a fresh slice.
func DemoMonitors() []Descriptor {
	return []Descriptor{
		{
			ID:         `\\.\DISPLAY1`,
			Device:     `\\?\DISPLAY#ACR0408#5&2e7612e0&0&UID4357#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`,
			Num:        0,
			LocalID:    0,
			Brightness: 63,
			Min:        0,
			Max:        100,
			Name:       "XB270HU",
			Type:       ProtocolDDCCI,
		},
		{
			ID:         `\\.\DISPLAY2`,
			Device:     `\\?\DISPLAY#DELA0BC#5&2e7612e0&0&UID4356#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`,
			Num:        1,
			LocalID:    1,
			Brightness: 46,
			Min:        0,
			Max:        100,
			Name:       "DELL U2415",
			Type:       ProtocolDDCCI,
		},
	}
}
