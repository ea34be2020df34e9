package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/testutil"
)

// shownConfig mirrors the YAML printed by config show.
type shownConfig struct {
	Display struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		FPS    int `yaml:"fps"`
	} `yaml:"display"`
	Hands struct {
		Color string `yaml:"color"`
	} `yaml:"hands"`
}

func showConfig(t *testing.T, args ...string) shownConfig {
	t.Helper()
	out, err := execute(t, testRunEnv(), append([]string{"config", "show"}, args...)...)
	require.NoError(t, err)

	var shown shownConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown), out)
	return shown
}

func TestConfigShow_Defaults(t *testing.T) {
	isolate(t)

	shown := showConfig(t)
	assert.Equal(t, 1280, shown.Display.Width)
	assert.Equal(t, 720, shown.Display.Height)
	assert.Equal(t, 60, shown.Display.FPS)
	assert.Equal(t, "white", shown.Hands.Color)
}

func TestConfigShow_Precedence(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
display:
  width: 800
  fps: 50
hands:
  color: green
`), 0o600))
	t.Setenv("CLOCKFACE_DISPLAY_FPS", "30")

	shown := showConfig(t, "--hand-color", "#ff8800")
	assert.Equal(t, 800, shown.Display.Width, "file beats default")
	assert.Equal(t, 720, shown.Display.Height, "default kept")
	assert.Equal(t, 30, shown.Display.FPS, "env beats file")
	assert.Equal(t, "#ff8800", shown.Hands.Color, "flag beats file")
}

func TestConfigShow_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "clock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  height: 600\n"), 0o600))

	shown := showConfig(t, "--config", path)
	assert.Equal(t, 600, shown.Display.Height)
}

func TestConfigShow_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, testRunEnv(), "config", "show", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, errors.ErrConfigNotFound)
	assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
}

func TestRunConfigShow_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := runConfigShow(ctx, &buf, &GlobalFlags{}, &ClockFlags{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWriteConfigYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeConfigYAML(&buf, config.DefaultConfig()))
	assert.Contains(t, buf.String(), "display:")
	assert.Contains(t, buf.String(), "width: 1280")
	assert.Contains(t, buf.String(), "color: white")
}

func TestWriteConfigYAML_WriteFailure(t *testing.T) {
	t.Parallel()

	err := writeConfigYAML(testutil.FailingWriter{}, config.DefaultConfig())
	require.ErrorIs(t, err, testutil.ErrMockWrite)
}
