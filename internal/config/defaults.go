package config

import "github.com/mrz1836/clockface/internal/constants"

// DefaultConfig returns a new Config with the built-in defaults: a 1280x720
// borderless window capped at 60 fps, with white hands.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
			FPS:    constants.DefaultFPS,
		},
		Hands: HandsConfig{
			Color: MustParseColor(constants.DefaultHandColor),
		},
	}
}
