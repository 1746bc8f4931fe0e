package timestamp

import (
	"errors"
	"fmt"
)

// Parse and configuration errors.
var (
	// ErrTooShort indicates the input is narrower than the format it is parsed as.
	ErrTooShort = errors.New("input too short")

	// ErrInvalidField indicates a numeric field holds something other than digits.
	ErrInvalidField = errors.New("invalid int value")

	// ErrInvalidSize indicates a boundary token length matches no known format.
	ErrInvalidSize = errors.New("invalid size for date or time")

	// ErrBoundaryTooShort indicates a boundary token has fewer than 8 characters.
	ErrBoundaryTooShort = errors.New("boundary should contain at least 8 characters")

	// ErrMixedFormat indicates start and end boundaries have different formats.
	ErrMixedFormat = errors.New("start and end must share the same format")
)

// ParseError reports a numeric field that could not be parsed.
type ParseError struct {
	Field string
	Value string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid int value for %s: %q", e.Field, e.Value)
}

// Unwrap returns ErrInvalidField.
func (e *ParseError) Unwrap() error {
	return ErrInvalidField
}
