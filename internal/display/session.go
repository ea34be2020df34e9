package display

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/raster"
	"github.com/mrz1836/clockface/internal/signal"
)

// Options describes the display to acquire.
type Options struct {
	// Width and Height are the logical surface size in pixels.
	Width  int
	Height int
	// IsTerminal reports whether output goes to an interactive terminal.
	// Nil skips the check.
	IsTerminal func() bool
}

// Session holds the display resources for one run of the clock: the frame
// buffer and the OS signal handler that reports window-close signals.
// Open acquires them; Close releases them exactly once.
type Session struct {
	surface *raster.Surface
	signals *signal.Handler
	logger  zerolog.Logger

	mu     sync.Mutex
	closed bool
}

// Open acquires the display. Any failure is returned wrapped in
// ErrDisplayInit and leaves nothing to release.
func Open(ctx context.Context, opts Options, logger zerolog.Logger) (*Session, error) {
	if opts.IsTerminal != nil && !opts.IsTerminal() {
		return nil, fmt.Errorf("%w: %w", errors.ErrDisplayInit, errors.ErrNotTerminal)
	}

	surface, err := raster.New(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDisplayInit, err)
	}

	s := &Session{
		surface: surface,
		signals: signal.NewHandler(ctx),
		logger:  logger.With().Str("component", "display").Logger(),
	}
	s.logger.Debug().
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("display acquired")
	return s, nil
}

// Surface returns the frame buffer.
func (s *Session) Surface() *raster.Surface {
	return s.surface
}

// Context is canceled when a close signal arrives or the session is closed.
func (s *Session) Context() context.Context {
	return s.signals.Context()
}

// Closing returns a channel that closes when a window-close signal arrives.
func (s *Session) Closing() <-chan struct{} {
	return s.signals.Interrupted()
}

// Close releases the display. Calls after the first are no-ops.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.signals.Stop()
	ev := s.logger.Debug()
	if sig := s.signals.Received(); sig != nil {
		ev = ev.Str("signal", sig.String())
	}
	ev.Msg("display released")
	return nil
}

// Closed reports whether Close has run.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
