package cli

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/logging"
)

// logFileCloser holds the log file writer for cleanup purposes.
var logFileCloser io.Closer //nolint:gochecknoglobals // Needed for cleanup

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
// This is separate from globalLoggerMu to avoid deadlocks.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// InitLogger creates the CLI logger.
//
// Log levels are set as follows:
//   - verbose=true: Debug level (most detailed)
//   - quiet=true: Warn level (errors and warnings only)
//   - default: Info level (normal operation)
//
// console selects whether entries also go to stderr. The clock itself owns
// the terminal, so it runs with console=false and logs only to
// ~/.clockface/logs/clockface.log. Every entry carries the run's session_id.
// If the log file cannot be created, the logger continues without it.
func InitLogger(verbose, quiet, console bool) zerolog.Logger {
	opts := logging.Options{
		Verbose: verbose,
		Quiet:   quiet,
		Console: console,
	}
	if dir, err := config.LogDir(); err == nil {
		opts.LogDir = dir
	}

	logger, closer, _ := logging.New(opts)
	CloseLogFile()
	logFileCloser = closer

	logger = withSession(logger)
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates and configures a zerolog.Logger with a custom writer.
// This is primarily intended for testing purposes.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	logger := withSession(logging.NewWithWriter(verbose, quiet, w))
	setGlobalLogger(logger)
	return logger
}

// withSession tags every entry with a fresh session id.
func withSession(logger zerolog.Logger) zerolog.Logger {
	return logger.With().Str("session_id", uuid.NewString()).Logger()
}

// setGlobalLogger points the zerolog/log package logger at cliLogger.
// This function is safe for concurrent use.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

// CloseLogFile closes the log file writer if it was opened.
// This should be called during application shutdown.
func CloseLogFile() {
	if logFileCloser != nil {
		_ = logFileCloser.Close()
		logFileCloser = nil
	}
}
