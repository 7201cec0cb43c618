// Package monitor describes the displays a host reports to the panel.
package monitor

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// Protocol is the control path the host uses for a display.
type Protocol string

const (
	ProtocolDDCCI         Protocol = "ddcci"
	ProtocolWMI           Protocol = "wmi"
	ProtocolStudioDisplay Protocol = "studio-display"
	ProtocolNone          Protocol = "none"
)

// Label returns a human-readable protocol name.
func (p Protocol) Label() string {
	switch p {
	case ProtocolDDCCI:
		return "DDC/CI"
	case ProtocolWMI:
		return "WMI"
	case ProtocolStudioDisplay:
		return "Studio Display"
	default:
		return "Not adjustable"
	}
}

// Adjustable reports whether brightness can be changed over this protocol.
func (p Protocol) Adjustable() bool {
	return p == ProtocolDDCCI || p == ProtocolWMI || p == ProtocolStudioDisplay
}

// Descriptor is one display as reported by the host. The panel treats it as
// read-only; a brightness change is requested from the host, which then
// republishes the list.
type Descriptor struct {
	ID         string   `json:"id" yaml:"id" validate:"required"`
	Device     string   `json:"device,omitempty" yaml:"device,omitempty"`
	Num        int      `json:"num" yaml:"num" validate:"min=0"`
	LocalID    int      `json:"localID" yaml:"localID" validate:"min=0"`
	Brightness int      `json:"brightness" yaml:"brightness"`
	Min        int      `json:"min" yaml:"min" validate:"min=0"`
	Max        int      `json:"max" yaml:"max" validate:"gtfield=Min"`
	Name       string   `json:"name" yaml:"name"`
	Type       Protocol `json:"type" yaml:"type" validate:"omitempty,oneof=ddcci wmi studio-display none"`
}

// DisplayName returns the name, falling back to the logical index.
func (d Descriptor) DisplayName() string {
	if name := strings.TrimSpace(d.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Display %d", d.Num+1)
}

// Clamp limits level to the descriptor's range.
func (d Descriptor) Clamp(level int) int {
	if level < d.Min {
		return d.Min
	}
	if level > d.Max {
		return d.Max
	}
	return level
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterStructValidation(func(sl validator.StructLevel) {
			d := sl.Current().Interface().(Descriptor)
			if d.Max > d.Min && (d.Brightness < d.Min || d.Brightness > d.Max) {
				sl.ReportError(d.Brightness, "Brightness", "brightness", "in_range", "")
			}
		}, Descriptor{})
		validateInst = v
	})
	return validateInst
}

// Validate checks a single descriptor.
func (d Descriptor) Validate() error {
	if err := validatorInstance().Struct(d); err != nil {
		return convertValidationError(err, d.ID)
	}
	return nil
}

// ValidateList checks every descriptor and rejects duplicate ids. It reports
// the first problem found.
func ValidateList(list []Descriptor) error {
	if _, errs := Partition(list); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Partition splits list into the descriptors that pass validation and one
// error per rejected entry, both in list order. A repeated id is rejected
// after its first occurrence.
func Partition(list []Descriptor) ([]Descriptor, []error) {
	valid := make([]Descriptor, 0, len(list))
	var errs []error
	seen := make(map[string]struct{}, len(list))
	for i, d := range list {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[d.ID]; dup {
			errs = append(errs, apperrors.NewValidationError(fmt.Sprintf("monitors[%d].id", i), fmt.Sprintf("duplicate monitor id %q", d.ID), nil))
			continue
		}
		seen[d.ID] = struct{}{}
		valid = append(valid, d)
	}
	return valid, errs
}

func convertValidationError(err error, id string) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := strings.ToLower(fe.Field())
		if id != "" {
			field = id + "." + field
		}
		return apperrors.NewValidationError(field, fmt.Sprintf("failed validation for tag '%s'", fe.Tag()), err)
	}
	return apperrors.NewValidationError("monitor", err.Error(), err)
}

// Clone returns an independent copy of list.
func Clone(list []Descriptor) []Descriptor {
	if list == nil {
		return nil
	}
	out := make([]Descriptor, len(list))
	copy(out, list)
	return out
}
