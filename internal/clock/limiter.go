package clock

import (
	"sync"
	"time"
)

// FrameLimiter caps how often frames are produced. Each Tick marks a frame
// boundary; Remaining reports how long the caller must wait before the next
// Tick to stay under the cap.
type FrameLimiter struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewFrameLimiter returns a limiter for fps frames per second.
// Non-positive fps disables the cap.
func NewFrameLimiter(c Clock, fps int) *FrameLimiter {
	var interval time.Duration
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	return &FrameLimiter{clock: c, interval: interval}
}

// Interval returns the minimum time between ticks.
func (l *FrameLimiter) Interval() time.Duration {
	return l.interval
}

// Tick marks a frame boundary and returns the time elapsed since the
// previous one. The first Tick returns 0.
func (l *FrameLimiter) Tick() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now
	return dt
}

// Remaining returns how long to wait before the next Tick so ticks are at
// least Interval apart. It never returns a negative duration.
func (l *FrameLimiter) Remaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.last.IsZero() {
		return 0
	}
	left := l.interval - l.clock.Now().Sub(l.last)
	if left < 0 {
		return 0
	}
	return left
}
