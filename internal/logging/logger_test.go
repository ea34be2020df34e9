package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectLevel(t *testing.T) {
	tests := []struct {
		name          string
		verbose       bool
		quiet         bool
		expectedLevel zerolog.Level
	}{
		{"default is info level", false, false, zerolog.InfoLevel},
		{"verbose enables debug level", true, false, zerolog.DebugLevel},
		{"quiet enables warn level", false, true, zerolog.WarnLevel},
		{"verbose takes precedence over quiet", true, true, zerolog.DebugLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedLevel, SelectLevel(tc.verbose, tc.quiet))
		})
	}
}

func TestNewWithWriter_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(false, false, &buf)
	logger.Info().Str("hand", "second").Msg("frame drawn")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "frame drawn", entry["event"])
	assert.Equal(t, "second", entry["hand"])
	assert.Contains(t, entry, "ts")
	assert.Equal(t, "ts", zerolog.TimestampFieldName)
	assert.Equal(t, "event", zerolog.MessageFieldName)
}

func TestNewWithWriter_QuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(false, true, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNew_FileOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := New(Options{LogDir: dir})
	require.NoError(t, err)
	logger.Info().Msg("clock started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "clockface.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "clock started")
}

func TestNew_ConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	logger, closer, err := New(Options{Console: true, Stderr: &console, LogDir: dir, Verbose: true})
	require.NoError(t, err)
	defer func() { _ = closer.Close() }()

	logger.Debug().Msg("both sinks")
	assert.Contains(t, console.String(), "both sinks")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNew_NoSinksDiscards(t *testing.T) {
	logger, closer, err := New(Options{})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	assert.NotPanics(t, func() { logger.Info().Msg("dropped") })
}

func TestNew_UnwritableLogDirFallsBack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	var console bytes.Buffer

	logger, closer, err := New(Options{Console: true, Stderr: &console, LogDir: filepath.Join(blocker, "logs")})
	require.Error(t, err)
	require.NotNil(t, closer)
	logger.Info().Msg("still logging")
	assert.True(t, strings.Contains(console.String(), "still logging"))
}
