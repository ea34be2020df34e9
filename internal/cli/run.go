package cli

import (
	"context"
	stderrors "errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/display"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/raster"
	"github.com/mrz1836/clockface/internal/tui"
)

// ClockFlags override the display and hands configuration.
type ClockFlags struct {
	Width     int
	Height    int
	FPS       int
	HandColor string
}

// AddClockFlags adds the window and hand flags. They apply to the clock and
// to every subcommand that renders or reports the configuration.
func AddClockFlags(cmd *cobra.Command, flags *ClockFlags) {
	cmd.PersistentFlags().IntVar(&flags.Width, "width", 0, "frame buffer width in pixels (default 1280)")
	cmd.PersistentFlags().IntVar(&flags.Height, "height", 0, "frame buffer height in pixels (default 720)")
	cmd.PersistentFlags().IntVar(&flags.FPS, "fps", 0, "frame rate cap (default 60)")
	cmd.PersistentFlags().StringVar(&flags.HandColor, "hand-color", "", "hand color as a name or #RRGGBB (default white)")
}

// overrides converts the flags into config overrides.
func (f *ClockFlags) overrides() *config.Overrides {
	return &config.Overrides{
		Width:     f.Width,
		Height:    f.Height,
		FPS:       f.FPS,
		HandColor: f.HandColor,
	}
}

// runEnv holds the process-level collaborators of a run so tests can
// replace them.
type runEnv struct {
	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal func() bool
	// clock is the time source for the hands.
	clock clock.Clock
	// options are appended to the bubbletea program options.
	options []tea.ProgramOption
}

func defaultRunEnv() runEnv {
	return runEnv{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		clock:      clock.RealClock{},
	}
}

// loadConfig loads the effective configuration with flag overrides. Bad
// configuration is invalid input.
func loadConfig(ctx context.Context, globals *GlobalFlags, flags *ClockFlags) (*config.Config, error) {
	cfg, err := config.LoadWithOverrides(ctx, globals.ConfigFile, flags.overrides())
	if err != nil {
		return nil, errors.NewExitCode2Error(err)
	}
	return cfg, nil
}

// runClock opens the display, runs the clock until a close event and
// releases the display on every exit path.
func runClock(ctx context.Context, globals *GlobalFlags, flags *ClockFlags, env runEnv) error {
	logger := GetLogger()
	ctx = logger.WithContext(ctx)

	cfg, err := loadConfig(ctx, globals, flags)
	if err != nil {
		return err
	}

	session, err := display.Open(ctx, display.Options{
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		IsTerminal: env.isTerminal,
	}, logger)
	if err != nil {
		logger.Error().Err(err).Msg("display initialization failed")
		return err
	}
	defer func() { _ = session.Close() }()

	display.CheckNoColor()

	model := tui.NewClockModel(tui.ClockConfig{
		Face:      face.Fit(cfg.Display.Width, cfg.Display.Height, cfg.Hands.Color.RGBA),
		Surface:   session.Surface(),
		Presenter: display.NewPresenter(raster.Black, display.HasColorSupport()),
		Clock:     env.clock,
		FPS:       cfg.Display.FPS,
		Logger:    logger,
	})

	logger.Info().
		Int("width", cfg.Display.Width).
		Int("height", cfg.Display.Height).
		Int("fps", cfg.Display.FPS).
		Str("hand_color", cfg.Hands.Color.String()).
		Msg("starting clock")

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithFPS(cfg.Display.FPS),
		// Signals are delivered through the session as close events.
		tea.WithoutSignalHandler(),
	}
	opts = append(opts, env.options...)

	return runProgram(ctx, tea.NewProgram(model, opts...), session, logger)
}

// runProgram runs p and forwards the session's close signals to it as
// CloseMsg. It returns when the program has exited.
func runProgram(ctx context.Context, p *tea.Program, session *display.Session, logger zerolog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	exited := make(chan struct{})

	g.Go(func() error {
		defer close(exited)
		if _, err := p.Run(); err != nil {
			if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "clock program failed")
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-session.Closing():
			logger.Debug().Msg("close signal received")
			p.Send(tui.CloseMsg{Reason: "signal"})
		case <-exited:
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}
