package config

import "time"

// Config represents the lumen configuration document.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Host  HostConfig  `yaml:"host"`
	Panel PanelConfig `yaml:"panel"`
}

// LogConfig controls where and how verbosely the panel logs.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	File  string `yaml:"file,omitempty" validate:"omitempty,state_path"`
	Human bool   `yaml:"human,omitempty"`
}

// HostConfig describes how to reach the host process.
type HostConfig struct {
	Address      string        `yaml:"address,omitempty" validate:"omitempty,host_addr"`
	PID          int32         `yaml:"pid,omitempty" validate:"min=0"`
	StateFile    string        `yaml:"state_file,omitempty" validate:"omitempty,state_path"`
	PollInterval time.Duration `yaml:"poll_interval,omitempty" validate:"omitempty,min=100ms,max=1m"`
}

// PanelConfig holds presentation options.
type PanelConfig struct {
	Accent string `yaml:"accent,omitempty" validate:"omitempty,hexcolor"`
	Demo   bool   `yaml:"demo,omitempty"`
	Width  int    `yaml:"width,omitempty" validate:"omitempty,min=30,max=200"`
	Mouse  bool   `yaml:"mouse,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Host: HostConfig{
			PollInterval: time.Second,
		},
		Panel: PanelConfig{Width: 60, Mouse: true},
	}
}
