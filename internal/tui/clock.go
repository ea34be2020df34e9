// Package tui runs the clock's render loop on the bubbletea runtime.
//
// The loop has two states. It starts Running; a close event (q, esc,
// ctrl+c, or a CloseMsg sent when the process receives a termination signal)
// moves it to Stopped and quits the program. Each FrameMsg while Running
// clears the surface, draws the hands for the current time and stores the
// presented frame for View. The next FrameMsg is scheduled so frames stay at
// least 1/fps apart.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/display"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/raster"
)

// FrameMsg asks the model to draw and present one frame.
type FrameMsg time.Time

// CloseMsg is the window-close event.
type CloseMsg struct {
	// Reason is logged when the loop stops.
	Reason string
}

// ClockConfig holds the dependencies of a ClockModel.
type ClockConfig struct {
	Face      face.Clock
	Surface   *raster.Surface
	Presenter *display.Presenter
	// Clock supplies both the displayed time and the frame pacing.
	Clock  clock.Clock
	FPS    int
	Logger zerolog.Logger
}

// ClockModel is the bubbletea model for the clock window.
type ClockModel struct {
	state     constants.LoopState
	face      face.Clock
	surface   *raster.Surface
	presenter *display.Presenter
	clock     clock.Clock
	limiter   *clock.FrameLimiter
	logger    zerolog.Logger

	// Terminal dimensions
	cols, rows int

	frame  string
	frames int
	dt     time.Duration
}

// NewClockModel creates a model in the Running state.
func NewClockModel(cfg ClockConfig) *ClockModel {
	c := cfg.Clock
	if c == nil {
		c = clock.RealClock{}
	}
	return &ClockModel{
		state:     constants.LoopStateRunning,
		face:      cfg.Face,
		surface:   cfg.Surface,
		presenter: cfg.Presenter,
		clock:     c,
		limiter:   clock.NewFrameLimiter(c, cfg.FPS),
		logger:    cfg.Logger.With().Str("component", "loop").Logger(),
		cols:      constants.DefaultTerminalCols,
		rows:      constants.DefaultTerminalRows,
	}
}

// Init draws the first frame right away.
func (m *ClockModel) Init() tea.Cmd {
	return func() tea.Msg {
		return FrameMsg(m.clock.Now())
	}
}

// Update handles messages and returns the updated model and any commands.
func (m *ClockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, m.stop("key " + msg.String())
		}

	case CloseMsg:
		return m, m.stop(msg.Reason)

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		return m, nil

	case FrameMsg:
		if m.state.IsTerminal() {
			return m, nil
		}
		m.drawFrame()
		return m, m.nextFrame()
	}

	return m, nil
}

// View returns the last presented frame.
func (m *ClockModel) View() string {
	if m.state.IsTerminal() {
		return ""
	}
	return m.frame
}

// State returns the current loop state.
func (m *ClockModel) State() constants.LoopState {
	return m.state
}

// drawFrame clears the surface, draws the three hands for the current time
// and presents the result.
func (m *ClockModel) drawFrame() {
	m.dt = m.limiter.Tick()

	m.surface.Fill(raster.Black)
	now := m.clock.Now()
	m.face.DrawSecondHand(m.surface, now.Second())
	m.face.DrawMinuteHand(m.surface, now.Minute())
	m.face.DrawHourHand(m.surface, now.Hour())

	m.frame = m.presenter.Render(m.surface.Image(), m.cols, m.rows)
	m.frames++
}

// nextFrame schedules the next FrameMsg once the frame budget has elapsed.
func (m *ClockModel) nextFrame() tea.Cmd {
	return tea.Tick(m.limiter.Remaining(), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// stop moves the loop to Stopped. Repeated close events are harmless.
func (m *ClockModel) stop(reason string) tea.Cmd {
	if !m.state.IsTerminal() {
		m.state = constants.LoopStateStopped
		m.logger.Info().
			Str("reason", reason).
			Int("frames", m.frames).
			Msg("clock window closed")
	}
	return tea.Quit
}
