package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/platform"
	"github.com/1broseidon/gridsnap/internal/tiling"
)

var tileCmd = &cobra.Command{
	Use:   "tile <position>",
	Short: "Tile the focused window once, for window managers that bind keys themselves",
	Example: `  gridsnap tile TopLeft
  gridsnap tile mr`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: grid.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := grid.ParsePosition(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		backend, err := platform.New()
		if err != nil {
			return fmt.Errorf("failed to connect to display: %w", err)
		}
		defer backend.Close()

		rect, err := tiling.NewTiler(backend, cfg.Gaps(), newLogger(cfg.SlogLevel())).Tile(pos)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatRect(pos, rect))
		return nil
	},
}

func formatRect(pos grid.Position, r grid.Rect) string {
	return fmt.Sprintf("%s: x=%d y=%d width=%d height=%d", pos.Name(), r.X, r.Y, r.Width, r.Height)
}
