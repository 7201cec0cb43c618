package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk over the defaults,
// validates it, and returns the result.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lumenerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, lumenerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadBootstrap reads the state file the host writes before starting the
// panel. JSON is accepted since it is valid YAML.
func LoadBootstrap(path string) (*bridge.Bootstrap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lumenerrors.NewParseError(path, 0, err)
	}
	return ParseBootstrap(path, data)
}

// ParseBootstrap decodes state file contents already read from path.
func ParseBootstrap(path string, data []byte) (*bridge.Bootstrap, error) {
	var bs bridge.Bootstrap
	if err := yaml.Unmarshal(data, &bs); err != nil {
		return nil, lumenerrors.NewParseError(path, extractLine(err), err)
	}

	if bs.Position != nil && len(bs.Position) != 2 {
		return nil, lumenerrors.NewValidationError("position", fmt.Sprintf("expected 2 coordinates, got %d", len(bs.Position)), nil)
	}
	if bs.Accent != "" {
		if err := validatorInstance().Var(bs.Accent, "hexcolor"); err != nil {
			return nil, lumenerrors.NewValidationError("accent", fmt.Sprintf("%q is not a hex color", bs.Accent), err)
		}
	}

	return &bs, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
