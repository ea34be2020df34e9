package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/testutil"
)

// isolate gives the test its own clockface home and disables color.
func isolate(t *testing.T) string {
	t.Helper()
	home := testutil.IsolateHome(t)
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(CloseLogFile)
	return home
}

// testRunEnv never sees a terminal and is pinned to noon.
func testRunEnv() runEnv {
	return runEnv{
		isTerminal: func() bool { return false },
		clock:      clock.Fixed(time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)),
	}
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, env runEnv, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2024-06-15"}, env)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
