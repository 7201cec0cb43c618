package errors

import (
	"fmt"
)

// ParseError represents a YAML/JSON parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or descriptor validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ProtocolError reports a host message that could not be accepted: an unknown
// kind, a kind sent in the wrong direction, or a payload of the wrong shape.
type ProtocolError struct {
	Kind    string
	Message string
	Err     error
}

// NewProtocolError constructs a ProtocolError for the given message kind.
func NewProtocolError(kind, message string, err error) error {
	return &ProtocolError{Kind: kind, Message: message, Err: err}
}

func (e *ProtocolError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("protocol error [%s]: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("protocol error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ProtocolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TransportError indicates a failure on the host channel itself.
type TransportError struct {
	Op   string
	Addr string
	Err  error
}

// NewTransportError constructs a TransportError for an operation (dial, read, write).
func NewTransportError(op, addr string, err error) error {
	return &TransportError{Op: op, Addr: addr, Err: err}
}

func (e *TransportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Addr != "" {
		return fmt.Sprintf("transport error: %s %s: %v", e.Op, e.Addr, e.Err)
	}
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the root error.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError records a failure raised while rendering a component subtree.
type RenderError struct {
	Component string
	Err       error
}

// NewRenderError constructs a RenderError. Recovered panic values that are not
// errors are formatted into one.
func NewRenderError(component string, recovered any) error {
	var err error
	switch v := recovered.(type) {
	case nil:
		err = fmt.Errorf("render failed")
	case error:
		err = v
	default:
		err = fmt.Errorf("%v", v)
	}
	return &RenderError{Component: component, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("render error in %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
