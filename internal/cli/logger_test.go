package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		verbose       bool
		quiet         bool
		expectedLevel zerolog.Level
	}{
		{"default is info level", false, false, zerolog.InfoLevel},
		{"verbose is debug level", true, false, zerolog.DebugLevel},
		{"quiet is warn level", false, true, zerolog.WarnLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := InitLoggerWithWriter(tc.verbose, tc.quiet, &buf)
			assert.Equal(t, tc.expectedLevel, logger.GetLevel())
		})
	}
}

func TestInitLoggerWithWriter_SessionID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := InitLoggerWithWriter(false, false, &buf)
	logger.Info().Msg("clock started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "clock started", entry["event"])
	assert.Contains(t, entry, "ts")

	id, ok := entry["session_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
}

func TestInitLogger_WritesLogFile(t *testing.T) {
	home := isolate(t)

	logger := InitLogger(false, false, false)
	logger.Info().Msg("display acquired")
	CloseLogFile()

	data, err := os.ReadFile(filepath.Join(home, "logs", "clockface.log")) //#nosec G304 -- test file
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event":"display acquired"`)
	assert.Contains(t, string(data), `"session_id":`)
}

func TestCloseLogFile_Idempotent(t *testing.T) {
	isolate(t)

	InitLogger(false, true, false)
	assert.NotPanics(t, func() {
		CloseLogFile()
		CloseLogFile()
	})
}
