package config

import (
	"image/color"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mrz1836/clockface/internal/errors"
)

// namedColors are the color names accepted in addition to #RRGGBB.
//
//nolint:gochecknoglobals // lookup table
var namedColors = map[string]string{
	"white":   "#ffffff",
	"black":   "#000000",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"gray":    "#808080",
	"grey":    "#808080",
}

// Color is a parsed color together with the text it was parsed from.
type Color struct {
	Spec string
	RGBA color.RGBA
}

// ParseColor parses a color name (white, red, ...) or a #RRGGBB / #RGB value.
func ParseColor(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return Color{}, errors.Wrap(errors.ErrInvalidColor, "empty color")
	}

	hex := s
	if named, ok := namedColors[s]; ok {
		hex = named
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(errors.ErrInvalidColor, "%q", spec)
	}
	r, g, b := c.RGB255()
	return Color{Spec: s, RGBA: color.RGBA{R: r, G: g, B: b, A: 0xff}}, nil
}

// MustParseColor is ParseColor for known-good literals; it panics on error.
func MustParseColor(spec string) Color {
	c, err := ParseColor(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the color as written in config.
func (c Color) String() string {
	return c.Spec
}

// IsZero reports whether the color was never set.
func (c Color) IsZero() bool {
	return c.Spec == ""
}

// MarshalYAML writes the color back as its original spec.
func (c Color) MarshalYAML() (any, error) {
	return c.Spec, nil
}

// stringToColorHookFunc decodes config strings into Color values.
func stringToColorHookFunc() mapstructure.DecodeHookFuncType {
	colorType := reflect.TypeOf(Color{})
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != colorType {
			return data, nil
		}
		s, _ := data.(string)
		return ParseColor(s)
	}
}
