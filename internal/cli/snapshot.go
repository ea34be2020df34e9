package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mrz1836/clockface/internal/clock"
	"github.com/mrz1836/clockface/internal/ctxutil"
	"github.com/mrz1836/clockface/internal/display"
	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/face"
	"github.com/mrz1836/clockface/internal/raster"
	"github.com/mrz1836/clockface/internal/tui"
)

// snapshotTimeLayout is the --at format.
const snapshotTimeLayout = "15:04:05"

// SnapshotFlags holds flags specific to the snapshot command.
type SnapshotFlags struct {
	// Out is the PNG file to write.
	Out string
	// At is an optional HH:MM:SS time to render instead of now.
	At string
}

// AddSnapshotCommand adds the snapshot subcommand to the root command.
func AddSnapshotCommand(root *cobra.Command, globals *GlobalFlags, clockFlags *ClockFlags, clk clock.Clock) {
	flags := &SnapshotFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one clock frame to a PNG file",
		Long: `Render a single frame of the clock face to a PNG file without opening
the terminal display. The frame shows the current local time unless --at is given.

Examples:
  clockface snapshot --out clock.png
  clockface snapshot --out ten-past-ten.png --at 10:08:30
  clockface snapshot --out red.png --hand-color "#ff0000" --width 640 --height 480`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnapshot(cmd.Context(), cmd.OutOrStdout(), globals, clockFlags, flags, clk)
		},
	}

	cmd.Flags().StringVar(&flags.Out, "out", "", "PNG file to write (required)")
	cmd.Flags().StringVar(&flags.At, "at", "", "time to render as HH:MM:SS (default now)")

	root.AddCommand(cmd)
}

// runSnapshot draws one frame and writes it to flags.Out.
func runSnapshot(ctx context.Context, w io.Writer, globals *GlobalFlags, clockFlags *ClockFlags, flags *SnapshotFlags, clk clock.Clock) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}
	logger := GetLogger()
	ctx = logger.WithContext(ctx)

	if flags.Out == "" {
		return errors.NewExitCode2Error(errors.Wrap(errors.ErrEmptyValue, "--out is required"))
	}

	at, err := snapshotTime(clk.Now(), flags.At)
	if err != nil {
		return errors.NewExitCode2Error(err)
	}

	cfg, err := loadConfig(ctx, globals, clockFlags)
	if err != nil {
		return err
	}

	surface, err := raster.New(cfg.Display.Width, cfg.Display.Height)
	if err != nil {
		return err
	}
	surface.Fill(raster.Black)
	face.Fit(surface.Width(), surface.Height(), cfg.Hands.Color.RGBA).Draw(surface, at)

	if err := writePNG(flags.Out, surface); err != nil {
		return err
	}

	logger.Info().
		Str("path", flags.Out).
		Str("at", at.Format(snapshotTimeLayout)).
		Msg("snapshot written")
	tui.NewOutput(w, isTerminalWriter(w)).Success(fmt.Sprintf("Wrote %s (%s)", flags.Out, at.Format(snapshotTimeLayout)))
	return nil
}

// snapshotTime returns now, or the HH:MM:SS value of at on now's date.
func snapshotTime(now time.Time, at string) (time.Time, error) {
	if at == "" {
		return now, nil
	}
	parsed, err := time.Parse(snapshotTimeLayout, at)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidTime, "%q is not HH:MM:SS", at)
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location()), nil
}

// isTerminalWriter reports whether w is a terminal that can show color.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) && display.HasColorSupport()
}

// writePNG encodes the surface to path, creating parent directories.
func writePNG(path string, surface *raster.Surface) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.Wrap(err, "failed to create snapshot directory")
		}
	}

	f, err := os.Create(path) //#nosec G304 -- path is chosen by the user
	if err != nil {
		return errors.Wrap(err, "failed to create snapshot file")
	}
	if err := surface.WritePNG(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to encode snapshot")
	}
	return errors.Wrap(f.Close(), "failed to close snapshot file")
}
