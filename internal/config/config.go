// Package config handles reading and writing the refluxtrack config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gerdlab/refluxtrack/internal/constants"
)

// Config is the top-level structure for config.yaml.
type Config struct {
	ServerURL      string `yaml:"server_url"`
	RequestTimeout int    `yaml:"request_timeout"` // seconds
	Debug          bool   `yaml:"debug"`

	// Dir is the directory the config was loaded from (not serialized).
	Dir string `yaml:"-"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		ServerURL:      constants.DefaultServerURL,
		RequestTimeout: constants.DefaultRequestTimeout,
	}
}

// ExpandPath expands a leading "~/" to the user home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Load reads config.yaml from dir. A missing file is not an error; defaults
// are returned so first runs work without an init step.
func Load(dir string) (*Config, error) {
	dir = ExpandPath(dir)
	cfg := Default()
	cfg.Dir = dir

	data, err := os.ReadFile(filepath.Join(dir, constants.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = constants.DefaultServerURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = constants.DefaultRequestTimeout
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	return cfg, nil
}

// Save writes cfg to config.yaml in dir, creating the directory if needed.
func Save(dir string, cfg *Config) error {
	dir = ExpandPath(dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
