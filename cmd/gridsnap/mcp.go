package main

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/gridsnap/internal/hotkeys"
	"github.com/1broseidon/gridsnap/internal/mcp"
	"github.com/1broseidon/gridsnap/internal/platform"
	"github.com/1broseidon/gridsnap/internal/tiling"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tiling tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg.SlogLevel())

		binding, err := hotkeys.NewBinding(cfg.ParsedModifier(), cfg.KeyMap())
		if err != nil {
			return err
		}

		// compute_tile and list_positions work without a display.
		var tiler mcp.Tiler
		backend, err := platform.New()
		if err != nil {
			logger.Warn("window system unavailable, tile_window disabled", "error", err)
		} else {
			defer backend.Close()
			tiler = tiling.NewTiler(backend, cfg.Gaps(), logger)
		}

		return mcp.NewServer(tiler, binding, cfg.Gaps(), logger).Run(cmd.Context())
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
