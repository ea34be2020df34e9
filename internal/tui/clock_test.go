package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/display"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/raster"
)

// newTestModel builds a 1280x720 clock pinned to at.
func newTestModel(t *testing.T, at time.Time) *ClockModel {
	t.Helper()
	s, err := raster.New(1280, 720)
	require.NoError(t, err)
	return NewClockModel(ClockConfig{
		Face:      face.Fit(s.Width(), s.Height(), raster.White),
		Surface:   s,
		Presenter: display.NewPresenter(raster.Black, false),
		Clock:     clock.Fixed(at),
		FPS:       60,
		Logger:    zerolog.Nop(),
	})
}

func midnight() time.Time {
	return time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewClockModel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())

	assert.Equal(t, constants.LoopStateRunning, m.State())
	assert.Equal(t, 0, m.frames)
	assert.Equal(t, 80, m.cols)
	assert.Equal(t, 24, m.rows)
	assert.Equal(t, time.Second/60, m.limiter.Interval())
	assert.Empty(t, m.View(), "nothing is presented before the first frame")
}

func TestNewClockModel_DefaultsToRealClock(t *testing.T) {
	t.Parallel()

	m := NewClockModel(ClockConfig{Logger: zerolog.Nop()})
	assert.IsType(t, clock.RealClock{}, m.clock)
}

func TestClockModel_InitRequestsFrame(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	frame, ok := msg.(FrameMsg)
	require.True(t, ok, "Init should produce a FrameMsg, got %T", msg)
	assert.Equal(t, midnight(), time.Time(frame))
}

func TestClockModel_FrameDrawsAndPresents(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())

	_, cmd := m.Update(FrameMsg(midnight()))
	require.NotNil(t, cmd, "a running loop schedules the next frame")
	assert.Equal(t, 1, m.frames)

	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 24)
	assert.True(t, strings.ContainsFunc(view, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }))

	// At midnight every hand points up: pixels above the center are lit,
	// pixels below are not.
	img := m.surface.Image()
	cx, cy := 640, 360
	assert.Equal(t, raster.White, img.RGBAAt(cx, cy-100))
	assert.Equal(t, raster.White, img.RGBAAt(cx, cy-200))
	assert.Equal(t, raster.Black, img.RGBAAt(cx, cy+50))
	assert.Equal(t, raster.Black, img.RGBAAt(cx-50, cy))
}

func TestClockModel_FrameClearsPreviousFrame(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	m.surface.Line(m.face.Center, m.face.Center.Add(m.face.SecondHand(30).Vector()), raster.White, 1)
	require.Equal(t, raster.White, m.surface.Image().RGBAAt(640, 500))

	m.Update(FrameMsg(midnight()))
	assert.Equal(t, raster.Black, m.surface.Image().RGBAAt(640, 500), "stale pixels are cleared")
}

func TestClockModel_HalfMinute(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 15, 0, 0, 30, 0, time.Local)
	m := newTestModel(t, at)
	m.Update(FrameMsg(at))

	// The second hand points straight down; minute and hour hands point up.
	assert.Equal(t, raster.White, m.surface.Image().RGBAAt(640, 360+200))
	assert.Equal(t, raster.White, m.surface.Image().RGBAAt(640, 360-150))
}

func TestClockModel_CloseKeys(t *testing.T) {
	t.Parallel()

	keys := map[string]tea.KeyMsg{
		"q":      {Type: tea.KeyRunes, Runes: []rune{'q'}},
		"esc":    {Type: tea.KeyEsc},
		"ctrl+c": {Type: tea.KeyCtrlC},
	}

	for name, key := range keys {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t, midnight())
			m.Update(FrameMsg(midnight()))

			_, cmd := m.Update(key)
			assert.True(t, isQuit(t, cmd))
			assert.Equal(t, constants.LoopStateStopped, m.State())
			assert.Empty(t, m.View())
		})
	}
}

func TestClockModel_OtherKeysIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.Equal(t, constants.LoopStateRunning, m.State())
}

func TestClockModel_CloseMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	_, cmd := m.Update(CloseMsg{Reason: "signal"})

	assert.True(t, isQuit(t, cmd))
	assert.True(t, m.State().IsTerminal())
}

func TestClockModel_NoFramesAfterStop(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	m.Update(FrameMsg(midnight()))
	m.Update(CloseMsg{Reason: "signal"})

	_, cmd := m.Update(FrameMsg(midnight()))
	assert.Nil(t, cmd, "a stopped loop schedules nothing")
	assert.Equal(t, 1, m.frames)

	// A second close event is harmless.
	_, cmd = m.Update(CloseMsg{Reason: "again"})
	assert.True(t, isQuit(t, cmd))
	assert.Equal(t, constants.LoopStateStopped, m.State())
}

func TestClockModel_WindowResize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)

	m.Update(FrameMsg(midnight()))
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 40)
	for _, line := range lines {
		assert.Equal(t, 120, runewidth.StringWidth(line))
	}
	assert.Equal(t, 1280, m.surface.Width(), "the logical surface keeps its size")
}

func TestClockModel_RecordsFrameDelta(t *testing.T) {
	t.Parallel()

	now := midnight()
	sc := &steppingClock{now: now}
	s, err := raster.New(64, 64)
	require.NoError(t, err)
	m := NewClockModel(ClockConfig{
		Face:      face.Fit(64, 64, raster.White),
		Surface:   s,
		Presenter: display.NewPresenter(raster.Black, false),
		Clock:     sc,
		FPS:       60,
		Logger:    zerolog.Nop(),
	})

	m.Update(FrameMsg(sc.Now()))
	assert.Equal(t, time.Duration(0), m.dt)

	sc.now = sc.now.Add(20 * time.Millisecond)
	m.Update(FrameMsg(sc.Now()))
	assert.Equal(t, 20*time.Millisecond, m.dt)
}

// steppingClock is a Clock the test moves by hand.
type steppingClock struct {
	now time.Time
}

func (s *steppingClock) Now() time.Time {
	return s.now
}

func TestClockModel_ProgramExitsOnQuitKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, midnight())
	in := bytes.NewBufferString("q")

	p := tea.NewProgram(m,
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		p.Kill()
		t.Fatal("program did not exit on q")
	}
	assert.Equal(t, constants.LoopStateStopped, m.State())
}
