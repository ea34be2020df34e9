// Package constants provides centralized constant values used throughout clockface.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by clockface.
const (
	// ClockfaceHome is the hidden directory name where clockface keeps its
	// config file and logs. It is created in the user's home directory.
	ClockfaceHome = ".clockface"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// ConfigFileName is the name of the YAML config file inside ClockfaceHome.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides (CLOCKFACE_*).
	EnvPrefix = "CLOCKFACE"

	// HomeEnvVar overrides the location of ClockfaceHome.
	HomeEnvVar = "CLOCKFACE_HOME"
)

// Display defaults. The window is borderless and fixed in size.
const (
	// DefaultWindowWidth is the logical surface width in pixels.
	DefaultWindowWidth = 1280

	// DefaultWindowHeight is the logical surface height in pixels.
	DefaultWindowHeight = 720

	// DefaultFPS caps the render loop at 60 frames per second.
	DefaultFPS = 60

	// DefaultHandColor is the color used for all three hands.
	DefaultHandColor = "white"

	// MinWindowDimension and MaxWindowDimension bound the configured surface size.
	MinWindowDimension = 16
	MaxWindowDimension = 7680

	// BackgroundColor fills the surface behind the hands. Hands may not use it.
	BackgroundColor = "black"

	// MinFPS and MaxFPS bound the configured frame-rate cap. The terminal
	// renderer never presents more than 120 frames per second.
	MinFPS = 1
	MaxFPS = 120
)

// Clock face geometry.
const (
	// FaceSizeDivisor sizes the face radius as min(width, height) / FaceSizeDivisor.
	FaceSizeDivisor = 3

	// SecondHandScale, MinuteHandScale and HourHandScale are hand lengths
	// relative to the face radius.
	SecondHandScale = 1.0
	MinuteHandScale = 0.75
	HourHandScale   = 0.5

	// SecondHandWidth, MinuteHandWidth and HourHandWidth are stroke widths in pixels.
	SecondHandWidth = 1
	MinuteHandWidth = 2
	HourHandWidth   = 4

	// SecondsPerTurn, MinutesPerTurn and HoursPerTurn are the divisors of a
	// full revolution. The hour hand makes one turn per day.
	SecondsPerTurn = 60
	MinutesPerTurn = 60
	HoursPerTurn   = 24
)

// Terminal presentation.
const (
	// DefaultTerminalCols and DefaultTerminalRows are used until the first
	// window size message arrives.
	DefaultTerminalCols = 80
	DefaultTerminalRows = 24
)

// Log rotation settings.
const (
	// LogMaxSizeMB is the maximum size in megabytes before a log file is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum number of days to keep rotated files.
	LogMaxAgeDays = 14

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)
