// Package errors provides centralized error handling for clockface.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidDisplay indicates an invalid display configuration value
	// (window size or frame-rate cap).
	ErrConfigInvalidDisplay = errors.New("invalid display configuration")

	// ErrConfigInvalidHands indicates an invalid hands configuration value.
	ErrConfigInvalidHands = errors.New("invalid hands configuration")

	// ErrConfigNotFound indicates that an explicitly requested config file was not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidColor indicates that a color string could not be parsed.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidTime indicates that a clock time argument could not be parsed.
	ErrInvalidTime = errors.New("invalid time")

	// ErrValueOutOfRange indicates that a value is outside the allowed range.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrDisplayInit indicates that the display subsystem could not be acquired.
	ErrDisplayInit = errors.New("display initialization failed")

	// ErrNotTerminal indicates that the clock was started without an interactive terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
