package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/lumen/internal/config"
)

const envPrefix = "LUMEN"

// settings layers flags and LUMEN_* environment variables over the
// configuration file. Flags win over the environment, which wins over the
// file.
type settings struct {
	configPath string
	v          *viper.Viper
}

// flagKeys maps each flag to its configuration key.
var flagKeys = map[string]string{
	"host":          "host.address",
	"host-pid":      "host.pid",
	"state-file":    "host.state_file",
	"poll-interval": "host.poll_interval",
	"log-level":     "log.level",
	"log-file":      "log.file",
	"accent":        "panel.accent",
	"width":         "panel.width",
	"demo":          "panel.demo",
	"mouse":         "panel.mouse",
}

func registerSettings(fs *pflag.FlagSet) *settings {
	s := &settings{v: viper.New()}

	fs.StringVarP(&s.configPath, "config", "c", "", "Path to a YAML configuration file")
	fs.String("host", "", "Host address, unix:///path or tcp://host:port")
	fs.Int32("host-pid", 0, "Close the panel when this process exits")
	fs.String("state-file", "", "State file written by the host")
	fs.Duration("poll-interval", time.Second, "How often to check the host process")
	fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "Write logs to this file")
	fs.String("accent", "", "Accent colour, overrides the host's")
	fs.Int("width", 60, "Maximum panel width in cells")
	fs.Bool("demo", false, "Show sample displays without a host")
	fs.Bool("mouse", true, "Enable mouse support")

	for flag, key := range flagKeys {
		_ = s.v.BindPFlag(key, fs.Lookup(flag))
	}

	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	s.v.AutomaticEnv()

	return s
}

// Load reads the configuration file, applies overrides and validates the
// result.
func (s *settings) Load() (*config.Config, error) {
	path := s.configPath
	if path == "" {
		path = s.v.GetString("config")
	}

	cfg := config.Default()
	if path != "" {
		parsed, err := config.ParseConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = *parsed
	}

	s.apply(&cfg)

	if err := config.ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// apply copies every key that was set by a flag or the environment.
func (s *settings) apply(cfg *config.Config) {
	v := s.v
	if v.IsSet("host.address") {
		cfg.Host.Address = v.GetString("host.address")
	}
	if v.IsSet("host.pid") {
		cfg.Host.PID = v.GetInt32("host.pid")
	}
	if v.IsSet("host.state_file") {
		cfg.Host.StateFile = v.GetString("host.state_file")
	}
	if v.IsSet("host.poll_interval") {
		cfg.Host.PollInterval = v.GetDuration("host.poll_interval")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.file") {
		cfg.Log.File = v.GetString("log.file")
	}
	if v.IsSet("panel.accent") {
		cfg.Panel.Accent = v.GetString("panel.accent")
	}
	if v.IsSet("panel.width") {
		cfg.Panel.Width = v.GetInt("panel.width")
	}
	if v.IsSet("panel.demo") {
		cfg.Panel.Demo = v.GetBool("panel.demo")
	}
	if v.IsSet("panel.mouse") {
		cfg.Panel.Mouse = v.GetBool("panel.mouse")
	}
}
