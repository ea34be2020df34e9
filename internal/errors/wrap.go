package errors

import "fmt"

// Wrap adds context to errors at package boundaries.
// It returns nil if err is nil, allowing for safe inline usage:
//
//	if err := v.ReadInConfig(); err != nil {
//	    return errors.Wrap(err, "failed to read config file")
//	}
//
// The original chain is preserved, so errors.Is() checks against
// sentinels such as ErrInvalidColor keep working.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf adds formatted context to errors at package boundaries.
// It returns nil if err is nil.
//
//	return errors.Wrapf(ErrValueOutOfRange, "display.fps must be between %d and %d", lo, hi)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}
