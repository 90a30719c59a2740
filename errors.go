package settings

import (
	"errors"
	"fmt"
)

// Errors returned by settings construction.
var (
	// ErrCoercion indicates a raw value could not be converted to its declared kind.
	ErrCoercion = errors.New("cannot convert option")

	// ErrMarkerConflict indicates two documentation markers share a non-empty value.
	ErrMarkerConflict = errors.New("documentation markers collide")

	// ErrInvalidSettings indicates a field constraint was violated.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrIncludeDepthExceeded indicates too many nested include directives.
	ErrIncludeDepthExceeded = errors.New("include depth exceeded")

	// ErrSourceInsideOutput indicates a source directory lies inside the output directory.
	ErrSourceInsideOutput = errors.New("source directory inside output directory")
)

// CoercionError describes a raw value that does not fit its option's kind.
type CoercionError struct {
	// Option is the name of the offending option.
	Option string
	// Value is the offending raw representation.
	Value string
	// Reason says what was expected.
	Reason string
}

// Error implements the error interface.
func (e *CoercionError) Error() string {
	return fmt.Sprintf("could not convert option '%s': %s, got: %s", e.Option, e.Reason, e.Value)
}

// Unwrap lets errors.Is match ErrCoercion.
func (e *CoercionError) Unwrap() error {
	return ErrCoercion
}

// MarkerConflictError names two marker options that share a value.
type MarkerConflictError struct {
	First  string
	Second string
	Mark   string
}

// Error implements the error interface.
func (e *MarkerConflictError) Error() string {
	return fmt.Sprintf("%s ('%s') and %s ('%s') are the same", e.First, e.Mark, e.Second, e.Mark)
}

// Unwrap lets errors.Is match ErrMarkerConflict.
func (e *MarkerConflictError) Unwrap() error {
	return ErrMarkerConflict
}
