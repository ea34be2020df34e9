// Package config provides configuration management for clockface with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (CLOCKFACE_* prefix, e.g. CLOCKFACE_DISPLAY_WIDTH)
//  3. Explicit config file (--config)
//  4. Project config (.clockface/config.yaml)
//  5. Global config (~/.clockface/config.yaml)
//  6. Built-in defaults
//
// Running with no flags, no environment and no files yields a 1280x720
// window at 60 fps with white hands.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

// Config is the root configuration structure for clockface.
type Config struct {
	// Display contains the window and frame pacing settings.
	Display DisplayConfig `yaml:"display" mapstructure:"display"`

	// Hands contains the clock hand appearance settings.
	Hands HandsConfig `yaml:"hands" mapstructure:"hands"`
}

// DisplayConfig contains settings for the display surface.
type DisplayConfig struct {
	// Width is the logical surface width in pixels.
	// Default: 1280
	Width int `yaml:"width" mapstructure:"width"`

	// Height is the logical surface height in pixels.
	// Default: 720
	Height int `yaml:"height" mapstructure:"height"`

	// FPS caps the render loop frame rate.
	// Default: 60
	FPS int `yaml:"fps" mapstructure:"fps"`
}

// HandsConfig contains settings for the clock hands.
type HandsConfig struct {
	// Color is the color of all three hands, as a name or #RRGGBB.
	// Default: white
	Color Color `yaml:"color" mapstructure:"color"`
}
