package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the setcarbon CLI configuration, loaded from a YAML file.
type Config struct {
	// StorePath is the entries file location.
	StorePath string `yaml:"store_path"`

	// DefaultCountry and DefaultState pre-fill the region on entries added
	// without an explicit location.
	DefaultCountry string `yaml:"default_country"`
	DefaultState   string `yaml:"default_state"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		StorePath: filepath.Join(home, ".setcarbon", "entries.json"),
		LogLevel:  "warn",
	}
}

// LoadConfig reads the config file at path, or the default location when path
// is empty. A missing file yields the default config; a malformed file is an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".setcarbon", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.StorePath == "" {
		cfg.StorePath = DefaultConfig().StorePath
	}
	return cfg, nil
}
