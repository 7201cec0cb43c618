package config

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("host_addr", func(fl validator.FieldLevel) bool {
			return isValidHostAddress(fl.Field().String())
		})

		_ = v.RegisterValidation("state_path", func(fl validator.FieldLevel) bool {
			return isValidFilePath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidHostAddress accepts unix:///path/to.sock and tcp://host:port.
func isValidHostAddress(raw string) bool {
	if strings.TrimSpace(raw) != raw || raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "unix":
		return u.Path != "" || u.Opaque != ""
	case "tcp":
		return u.Hostname() != "" && u.Port() != ""
	default:
		return false
	}
}

// isValidFilePath performs syntactic validation of file paths without filesystem access
func isValidFilePath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	// Check for NUL characters
	if strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	// Drive-letter paths written by a Windows host.
	if len(path) > 2 && path[1] == ':' && (path[2] == '\\' || path[2] == '/') {
		return true
	}

	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") || strings.HasPrefix(path, "~/") || !strings.ContainsAny(path, "<>|\"")
}
