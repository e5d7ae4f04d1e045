package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/gridsnap/internal/config"
	"github.com/1broseidon/gridsnap/internal/notify"
)

var (
	configPath string

	// notifyOnError follows the loaded config. Failures before the config is
	// read still notify.
	notifyOnError = true
)

var rootCmd = &cobra.Command{
	Use:   "gridsnap",
	Short: "Snap the focused window into a 3x3 grid with global hotkeys",
	Long: `gridsnap registers nine global hotkeys, one per cell of a 3x3 grid, and
moves the focused window into the matching cell of its display.

Without a subcommand gridsnap runs the hotkey daemon.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: ./config.json, then <user config dir>/gridsnap/config.json)")

	rootCmd.AddCommand(runCmd, tileCmd, previewCmd, configCmd, positionsCmd, mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridsnap: %v\n", err)
		notify.ForDetached(notifyOnError).Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the config named by --config, or the default location.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(configPath)
	}
	if err != nil {
		return nil, err
	}
	notifyOnError = cfg.GetNotifyOnError()
	return cfg, nil
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
