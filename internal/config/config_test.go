package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/gridsnap/internal/grid"
	"github.com/1broseidon/gridsnap/internal/keys"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.ParsedModifier() != keys.Alt {
		t.Fatalf("expected default modifier alt, got %s", cfg.ParsedModifier())
	}
	if !cfg.GetNotifyOnError() {
		t.Fatalf("expected notify_on_error to default to true")
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", "{\n\t\"gap\": 10,\n\t\"edge_gap\": 20,\n\t\"bindings\": {}\n}\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Gaps(); got != (grid.Gaps{Gap: 10, EdgeGap: 20}) {
		t.Fatalf("unexpected gaps %+v", got)
	}
	if len(cfg.Bindings) != 0 {
		t.Fatalf("expected empty bindings, got %v", cfg.Bindings)
	}
}

func TestLoadFromPath_YAML(t *testing.T) {
	data := strings.Join([]string{
		"gap: 4",
		"edge_gap: 8",
		"modifier: ctrl+alt",
		"log_level: debug",
		"notify_on_error: false",
		"bindings:",
		"  tl: q",
		"  BottomRight: /",
		"",
	}, "\n")
	cfg, err := LoadFromPath(writeConfig(t, "config.yaml", data))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ParsedModifier() != keys.Ctrl|keys.Alt {
		t.Fatalf("expected ctrl+alt, got %s", cfg.ParsedModifier())
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.SlogLevel())
	}
	if cfg.GetNotifyOnError() {
		t.Fatalf("expected notify_on_error false")
	}
	km := cfg.KeyMap()
	if km[grid.TopLeft] != "q" || km[grid.BottomRight] != "slash" {
		t.Fatalf("bindings not applied: %v", km)
	}
}

func TestLoadFromPath_MissingFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for missing config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     string
		contains string
	}{
		{"malformed json", "config.json", `{"gap": 10,`, "malformed"},
		{"unknown json key", "config.json", `{"gap": 1, "gaps": 2}`, "gaps"},
		{"unknown yaml key", "config.yaml", "unknown_key: 1\n", "unknown_key"},
		{"trailing json value", "config.json", "{\"gap\": 1}\n{\"gap\": 999}\n", "malformed"},
		{"second yaml document", "config.yaml", "gap: 1\n---\ngap: 999\n", "malformed"},
		{"negative gap", "config.json", `{"gap": -1}`, "gap must be >= 0"},
		{"negative edge gap", "config.json", `{"edge_gap": -5}`, "edge_gap must be >= 0"},
		{"bad modifier", "config.json", `{"modifier": "hyper"}`, "modifier"},
		{"bad log level", "config.yaml", "log_level: loud\n", "log_level"},
		{"duplicate binding", "config.json", `{"bindings": {"tl": "k"}}`, "bound to both"},
		{"bad binding position", "config.json", `{"bindings": {"center": "k"}}`, "center"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.data)
			_, err := LoadFromPath(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Fatalf("expected error containing %q, got %v", tt.contains, err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Fatalf("expected error to include file path, got %v", err)
			}
		})
	}
}

func TestParse_RejectsTrailingDocument(t *testing.T) {
	_, err := Parse([]byte("gap: 1\n---\ngap: 999\n"))
	if !errors.Is(err, errUnexpectedContent) {
		t.Fatalf("expected trailing document to be rejected, got %v", err)
	}
}

func TestParse_EmptyYAMLUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("# empty\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Gap != 0 || cfg.EdgeGap != 0 || cfg.Modifier != "alt" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestDefaultConfigPath_PrefersWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	userDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir: %v", err)
	}
	if path != filepath.Join(userDir, "gridsnap", "config.json") {
		t.Fatalf("expected user config path, got %q", path)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	path, err = DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath: %v", err)
	}
	if path != "config.json" {
		t.Fatalf("expected working-directory config, got %q", path)
	}
}
