package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/clockface/internal/config"
	"github.com/mrz1836/clockface/internal/ctxutil"
	"github.com/mrz1836/clockface/internal/errors"
)

// AddConfigCommand adds the config command and its subcommands.
func AddConfigCommand(root *cobra.Command, globals *GlobalFlags, clockFlags *ClockFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect clockface configuration",
		Long: `Inspect the clockface configuration.

Configuration is read from ~/.clockface/config.yaml, .clockface/config.yaml in
the current directory, the file passed with --config and CLOCKFACE_* environment
variables (e.g. CLOCKFACE_DISPLAY_FPS=30), in increasing precedence. Flags win
over all of them.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), globals, clockFlags)
		},
	})

	root.AddCommand(cmd)
}

// runConfigShow writes the effective configuration to w.
func runConfigShow(ctx context.Context, w io.Writer, globals *GlobalFlags, clockFlags *ClockFlags) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	ctx = GetLogger().WithContext(ctx)
	cfg, err := loadConfig(ctx, globals, clockFlags)
	if err != nil {
		return err
	}
	return writeConfigYAML(w, cfg)
}

func writeConfigYAML(w io.Writer, cfg *config.Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode configuration")
	}
	if _, err := fmt.Fprint(w, string(out)); err != nil {
		return errors.Wrap(err, "failed to write configuration")
	}
	return nil
}
