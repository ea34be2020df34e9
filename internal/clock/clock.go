// Package clock provides the time source the clock face reads and the frame
// limiter that paces the render loop. Code calls Clock.Now instead of
// time.Now so tests can pin the time.
package clock

import "time"

// Clock is an interface for time operations.
type Clock interface {
	// Now returns the current local wall-clock time.
	Now() time.Time
}

// RealClock implements Clock using the system clock. Its readings are in the
// local time zone and carry a monotonic component for frame pacing.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// Fixed is a Clock frozen at a single instant. It backs snapshots rendered
// at a requested time.
type Fixed time.Time

// Now returns the frozen time.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

var _ Clock = Fixed{}
