package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/hotkeys"
	"github.com/1broseidon/gridsnap/internal/keys"
)

// Config holds the application configuration.
type Config struct {
	Gap      int               `yaml:"gap" json:"gap"`
	EdgeGap  int               `yaml:"edge_gap" json:"edge_gap"`
	Bindings map[string]string `yaml:"bindings" json:"bindings"`
	Modifier string            `yaml:"modifier" json:"modifier"`
	LogLevel string            `yaml:"log_level" json:"log_level"`
	// NotifyOnError shows a desktop notification for startup failures when
	// stderr is not a terminal. Default: true
	NotifyOnError *bool `yaml:"notify_on_error" json:"notify_on_error,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Gap:      0,
		EdgeGap:  0,
		Bindings: map[string]string{},
		Modifier: "alt",
		LogLevel: "info",
	}
}

// Validate checks value ranges and that bindings and modifier parse.
func (c *Config) Validate() error {
	if c.Gap < 0 {
		return fmt.Errorf("gap must be >= 0 (got %d)", c.Gap)
	}
	if c.EdgeGap < 0 {
		return fmt.Errorf("edge_gap must be >= 0 (got %d)", c.EdgeGap)
	}
	if _, err := keys.ParseModifier(c.Modifier); err != nil {
		return fmt.Errorf("modifier: %w", err)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := hotkeys.KeyMapFromBindings(c.Bindings); err != nil {
		return err
	}
	return nil
}

// Gaps returns the gap settings used by the geometry engine.
func (c *Config) Gaps() grid.Gaps {
	return grid.Gaps{Gap: c.Gap, EdgeGap: c.EdgeGap}
}

// ParsedModifier returns the hotkey modifier. Call after Validate.
func (c *Config) ParsedModifier() keys.Modifier {
	mod, err := keys.ParseModifier(c.Modifier)
	if err != nil {
		return keys.Alt
	}
	return mod
}

// KeyMap resolves bindings over the default key map. Call after Validate.
func (c *Config) KeyMap() hotkeys.KeyMap {
	km, err := hotkeys.KeyMapFromBindings(c.Bindings)
	if err != nil {
		return hotkeys.DefaultKeyMap()
	}
	return km
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetNotifyOnError returns the effective value, defaulting to true.
func (c *Config) GetNotifyOnError() bool {
	if c == nil || c.NotifyOnError == nil {
		return true
	}
	return *c.NotifyOnError
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", s)
	}
}
