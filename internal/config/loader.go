package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "gridsnap"
	configFileName = "config.json"
)

// DefaultConfigPath returns ./config.json when it exists, otherwise
// <user config dir>/gridsnap/config.json.
func DefaultConfigPath() (string, error) {
	if exists, err := pathExists(configFileName); err != nil {
		return "", err
	} else if exists {
		return configFileName, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a JSON or YAML config file. Unlike optional settings
// files, a missing file is an error: there is nothing sensible to run
// without it.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates config data, JSON or YAML. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("malformed config: %w", err)
	}
	if cfg.Bindings == nil {
		cfg.Bindings = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// decode reads a single YAML document into cfg. JSON is accepted as YAML
// flow syntax. Anything after the first document is an error.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errUnexpectedContent
	}
}

var errUnexpectedContent = errors.New("unexpected content after the first document")

func pathExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}
