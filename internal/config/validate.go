package config

import (
	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/errors"
)

// Validate checks the configuration for invalid values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - display.width and display.height must be within [16, 7680]
//   - display.fps must be within [1, 120]
//   - hands.color must be set and differ from the background
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateDisplayConfig(&cfg.Display); err != nil {
		return err
	}
	return validateHandsConfig(&cfg.Hands)
}

func validateDisplayConfig(cfg *DisplayConfig) error {
	if !inRange(cfg.Width, constants.MinWindowDimension, constants.MaxWindowDimension) {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.width must be between %d and %d, got %d",
			constants.MinWindowDimension, constants.MaxWindowDimension, cfg.Width)
	}
	if !inRange(cfg.Height, constants.MinWindowDimension, constants.MaxWindowDimension) {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.height must be between %d and %d, got %d",
			constants.MinWindowDimension, constants.MaxWindowDimension, cfg.Height)
	}
	if !inRange(cfg.FPS, constants.MinFPS, constants.MaxFPS) {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.fps must be between %d and %d, got %d",
			constants.MinFPS, constants.MaxFPS, cfg.FPS)
	}
	return nil
}

func validateHandsConfig(cfg *HandsConfig) error {
	if cfg.Color.IsZero() {
		return errors.Wrap(errors.ErrConfigInvalidHands, "hands.color must be set")
	}
	if cfg.Color.RGBA == MustParseColor(constants.BackgroundColor).RGBA {
		return errors.Wrapf(errors.ErrConfigInvalidHands,
			"hands.color %q matches the %s background", cfg.Color, constants.BackgroundColor)
	}
	return nil
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
