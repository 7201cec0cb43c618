package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// convertValidationError normalizes validator errors into lumen validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lumenerrors.NewValidationError(field, msg, err)
	}

	return lumenerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns Config.Panel.Accent into panel.accent.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
