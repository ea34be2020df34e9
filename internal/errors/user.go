package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to user-facing messages.
// A slice (not a map) keeps lookup order stable for errors.Is() traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrConfigInvalidDisplay,
		info: ErrorInfo{
			Message: "The display configuration is invalid.",
			Action:  "Check display.width, display.height and display.fps in your config file.",
		},
	},
	{
		err: ErrConfigInvalidHands,
		info: ErrorInfo{
			Message: "The hands configuration is invalid.",
			Action:  "Set hands.color to a named color (e.g. white) or a #RRGGBB value.",
		},
	},
	{
		err: ErrConfigNotFound,
		info: ErrorInfo{
			Message: "The config file passed with --config does not exist.",
			Action:  "Check the path, or omit --config to use ~/.clockface/config.yaml.",
		},
	},
	{
		err: ErrInvalidColor,
		info: ErrorInfo{
			Message: "A color value could not be parsed.",
			Action:  "Use a named color (white, red, ...) or a #RRGGBB value.",
		},
	},
	{
		err: ErrInvalidTime,
		info: ErrorInfo{
			Message: "The time value could not be parsed.",
			Action:  "Use the HH:MM:SS format, e.g. --at 10:08:30.",
		},
	},
	{
		err: ErrNotTerminal,
		info: ErrorInfo{
			Message: "The clock needs an interactive terminal.",
			Action:  "Run clockface from a terminal, or use 'clockface snapshot' to render a PNG.",
		},
	},
	{
		err: ErrDisplayInit,
		info: ErrorInfo{
			Message: "The display could not be initialized.",
			Action:  "",
		},
	},
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Returns an ErrorInfo with the original error message if not found.
func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take to resolve the issue. The action is empty when
// there is nothing the user can do.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
