// Package logging builds the zerolog logger used by clockface.
//
// While the clock owns the terminal, nothing may be written to stderr, so
// the logger writes only to a rotating file. Commands that do not take over
// the terminal also log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/errors"
)

// zerologConfigOnce ensures zerolog global settings are configured exactly once.
var zerologConfigOnce sync.Once //nolint:gochecknoglobals // One-time configuration

// configureZerologGlobals sets the field names used in log entries.
func configureZerologGlobals() {
	zerologConfigOnce.Do(func() {
		zerolog.TimestampFieldName = "ts"
		zerolog.MessageFieldName = "event"
	})
}

// Options configures New.
type Options struct {
	// Verbose selects debug level. It wins over Quiet.
	Verbose bool
	// Quiet selects warn level.
	Quiet bool
	// Console also writes to Stderr.
	Console bool
	// Stderr is the console destination. Defaults to os.Stderr.
	Stderr io.Writer
	// LogDir is where the rotating log file lives. Empty disables file logging.
	LogDir string
}

// New creates a logger from opts. It returns a closer for the log file that
// must be called on shutdown.
//
// A log file that cannot be created is not fatal: the logger falls back to
// the console (or discards output if the console is disabled) and the error
// is returned alongside a usable logger.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	configureZerologGlobals()

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, selectOutput(opts.Stderr))
	}

	var closer io.Closer = nopCloser{}
	var fileErr error
	if opts.LogDir != "" {
		fw, err := createLogFileWriter(opts.LogDir)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, fw)
			closer = fw
		}
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(w).Level(SelectLevel(opts.Verbose, opts.Quiet)).With().Timestamp().Logger()
	return logger, closer, fileErr
}

// NewWithWriter creates a logger writing JSON to w. Intended for tests.
func NewWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	configureZerologGlobals()
	return zerolog.New(w).Level(SelectLevel(verbose, quiet)).With().Timestamp().Logger()
}

// SelectLevel maps verbosity flags to a level.
func SelectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput returns a console writer on a color TTY and raw JSON otherwise.
func selectOutput(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
		}
	}
	return w
}

// createLogFileWriter opens the rotating log file in dir.
func createLogFileWriter(dir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.CLILogFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
