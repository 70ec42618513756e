package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidName is returned when a template is registered without a
	// usable name. Names are trimmed before the check, so whitespace-only
	// names are rejected as well.
	ErrInvalidName = errors.New("store: template name is required")

	// ErrUnknownTemplate is returned when a lookup targets a name that was
	// never registered or was removed by Clear.
	ErrUnknownTemplate = errors.New("store: template not found")
)

// ParseError reports template source the Validator refused to parse. It
// unwraps to the engine error so callers can inspect engine specific details.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("store: parse template %q: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
