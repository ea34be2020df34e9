// Package main provides the entry point for the clockface CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrz1836/clockface/internal/cli"
	"github.com/mrz1836/clockface/internal/errors"
)

// Set at build time via ldflags.
//
//nolint:gochecknoglobals // Build metadata
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	cli.CloseLogFile()

	if err != nil {
		msg, action := errors.Actionable(err)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		if detail := err.Error(); detail != msg {
			_, _ = fmt.Fprintf(os.Stderr, "  %s\n", detail)
		}
		if action != "" {
			_, _ = fmt.Fprintf(os.Stderr, "  %s\n", action)
		}
	}
	os.Exit(cli.ExitCodeForError(err))
}
