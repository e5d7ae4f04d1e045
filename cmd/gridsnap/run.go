package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/gridsnap/internal/config"
	"github.com/1broseidon/gridsnap/internal/daemon"
	"github.com/1broseidon/gridsnap/internal/hotkeys"
	"github.com/1broseidon/gridsnap/internal/platform"
	"github.com/1broseidon/gridsnap/internal/tiling"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Register the grid hotkeys and tile windows until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(cmd.Context())
	},
}

func runDaemon(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return startDaemon(ctx, loadConfig, platform.New)
}

// startDaemon wires config, backend, hotkeys and driver. Config is read
// before the backend is opened so a bad config never grabs any keys.
func startDaemon(ctx context.Context, load func() (*config.Config, error), newBackend func() (platform.Backend, error)) error {
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg.SlogLevel())
	gaps := cfg.Gaps()
	logger.Info("configuration loaded", "modifier", cfg.ParsedModifier().String(), "gap", gaps.Gap, "edge_gap", gaps.EdgeGap)

	backend, err := newBackend()
	if err != nil {
		return fmt.Errorf("failed to connect to display: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("failed to close backend", "error", err)
		}
	}()

	binding, err := hotkeys.RegisterAll(backend, cfg.ParsedModifier(), cfg.KeyMap())
	if err != nil {
		return err
	}
	logBindings(logger, binding)

	tiler := tiling.NewTiler(backend, gaps, logger)
	return daemon.NewDriver(backend, binding, tiler, logger).Run(ctx)
}

func logBindings(logger *slog.Logger, b *hotkeys.Binding) {
	for _, e := range b.Entries() {
		logger.Debug("hotkey registered",
			"position", e.Position.Name(),
			"hotkey", b.Modifier().String()+"+"+string(e.Key),
			"token", e.Token)
	}
	logger.Info("gridsnap started", "hotkeys", len(b.Entries()))
}
