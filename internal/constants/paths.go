package constants

// Log file names.
const (
	// CLILogFileName is the name of the rotating log file under ClockfaceHome/logs.
	CLILogFileName = "clockface.log"
)
