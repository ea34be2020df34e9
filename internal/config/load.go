package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/clockface/internal/constants"
	"github.com/mrz1836/clockface/internal/errors"
)

// Overrides holds values from CLI flags. Zero values are ignored.
type Overrides struct {
	Width     int
	Height    int
	FPS       int
	HandColor string
}

// newViperInstance creates a Viper instance with the CLOCKFACE_ env prefix,
// key replacer and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	v.SetDefault("display.width", constants.DefaultWindowWidth)
	v.SetDefault("display.height", constants.DefaultWindowHeight)
	v.SetDefault("display.fps", constants.DefaultFPS)
	v.SetDefault("hands.color", constants.DefaultHandColor)
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence.
// configFile is an optional explicit config path; if set it must exist.
// Missing global or project files are not an error.
func Load(ctx context.Context, configFile string) (*Config, error) {
	v := newViperInstance()

	if path, err := GlobalConfigPath(); err == nil {
		if err := mergeIfExists(v, path); err != nil {
			return nil, errors.Wrap(err, "failed to read global config file")
		}
	}

	if err := mergeIfExists(v, ProjectConfigPath()); err != nil {
		return nil, errors.Wrap(err, "failed to read project config file")
	}

	if configFile != "" {
		if !fileExists(configFile) {
			return nil, errors.Wrapf(errors.ErrConfigNotFound, "%s", configFile)
		}
		if err := merge(v, configFile); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Int("display.width", cfg.Display.Width).
		Int("display.height", cfg.Display.Height).
		Int("display.fps", cfg.Display.FPS).
		Str("hands.color", cfg.Hands.Color.String()).
		Str("config_file", configFile).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides,
// which have the highest precedence.
func LoadWithOverrides(ctx context.Context, configFile string, overrides *Overrides) (*Config, error) {
	cfg, err := Load(ctx, configFile)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		return cfg, nil
	}

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// LoadFromPaths loads configuration from exactly the given files, in
// increasing precedence, plus defaults and environment. Empty paths and
// missing files are skipped.
func LoadFromPaths(_ context.Context, paths ...string) (*Config, error) {
	v := newViperInstance()
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := mergeIfExists(v, path); err != nil {
			return nil, errors.Wrapf(err, "failed to read config: %s", path)
		}
	}
	return unmarshalAndValidate(v)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// applyOverrides merges non-zero override values into cfg.
func applyOverrides(cfg *Config, overrides *Overrides) error {
	if overrides.Width != 0 {
		cfg.Display.Width = overrides.Width
	}
	if overrides.Height != 0 {
		cfg.Display.Height = overrides.Height
	}
	if overrides.FPS != 0 {
		cfg.Display.FPS = overrides.FPS
	}
	if overrides.HandColor != "" {
		c, err := ParseColor(overrides.HandColor)
		if err != nil {
			return errors.Wrap(err, "invalid --hand-color")
		}
		cfg.Hands.Color = c
	}
	return nil
}

func mergeIfExists(v *viper.Viper, path string) error {
	if !fileExists(path) {
		return nil
	}
	return merge(v, path)
}

func merge(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return err
	}
	return nil
}

// fileExists returns true if a regular file exists at path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// viperDecoderOption configures mapstructure to decode color strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			stringToColorHookFunc(),
		),
	)
}
