package config

import (
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return lumenerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Panel.Demo && cfg.Host.Address != "" {
		return lumenerrors.NewValidationError("panel.demo", "demo mode cannot be combined with a host address", nil)
	}

	if cfg.Host.PID > 0 && cfg.Host.Address == "" && cfg.Host.StateFile == "" {
		return lumenerrors.NewValidationError("host.pid", "watching a host process requires host.address or host.state_file", nil)
	}

	return nil
}
