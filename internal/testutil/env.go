// Package testutil provides test helpers shared by clockface packages.
//
// It should only be imported by test files (*_test.go).
package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigEnvVars are the CLOCKFACE_* variables that change loaded configuration.
//
//nolint:gochecknoglobals // Read-only list
var ConfigEnvVars = []string{
	"CLOCKFACE_CONFIG",
	"CLOCKFACE_VERBOSE",
	"CLOCKFACE_QUIET",
	"CLOCKFACE_DISPLAY_WIDTH",
	"CLOCKFACE_DISPLAY_HEIGHT",
	"CLOCKFACE_DISPLAY_FPS",
	"CLOCKFACE_HANDS_COLOR",
}

// IsolateHome points CLOCKFACE_HOME and the working directory at fresh temp
// dirs and unsets every ConfigEnvVars entry for the duration of the test.
// It returns the home directory. Tests using it cannot run in parallel.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("CLOCKFACE_HOME", home)
	for _, key := range ConfigEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())
	return home
}
