// Package config loads CarbonFocus configuration from the user's YAML
// config file. Every field has a sensible default; a missing config
// file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonfocus/internal/logging"
)

// Config is the full application configuration.
type Config struct {
	// Organization is the default reporting organization name, used
	// when the calc command is run without --org.
	Organization string `yaml:"organization"`

	// Catalog overrides where emission factors come from.
	Catalog CatalogConfig `yaml:"catalog"`

	// History controls the calculation history store.
	History HistoryConfig `yaml:"history"`

	// Logging controls log level, format and destination.
	Logging logging.Config `yaml:"logging"`
}

// CatalogConfig selects the emission factor dataset.
type CatalogConfig struct {
	// Path points at an external catalog JSON file. Empty means the
	// embedded dataset.
	Path string `yaml:"path"`
}

// HistoryConfig controls history persistence.
type HistoryConfig struct {
	// Path overrides the history file location. Empty means
	// ~/.carbonfocus/history.json.
	Path string `yaml:"path"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging: logging.Config{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// ConfigDir returns the CarbonFocus configuration directory,
// ~/.carbonfocus.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(homeDir, ".carbonfocus"), nil
}

// DefaultPath returns the default config file path,
// ~/.carbonfocus/config.yaml.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// Load reads configuration from path. An empty path uses DefaultPath.
// A missing file returns the defaults; a file that exists but does not
// parse is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}
