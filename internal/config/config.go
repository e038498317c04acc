// Package config loads the application configuration from a TOML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/hammamikhairi/chefiq/internal/publish"
)

// Storage configures the key-value backend.
type Storage struct {
	// Backend is "sqlite" or "memory".
	Backend string `toml:"backend"`
	// Path is the SQLite database file. Ignored by the memory backend.
	Path string `toml:"path"`
}

// Publish configures the publish flow.
type Publish struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging configures log output.
type Logging struct {
	// Level is "off", "normal", or "verbose".
	Level string `toml:"level"`
	// File receives log output; empty means stderr.
	File string `toml:"file"`
}

// Config encapsulates all configuration values.
type Config struct {
	Storage Storage `toml:"storage"`
	Publish Publish `toml:"publish"`
	Logging Logging `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: Storage{
			Backend: "sqlite",
			Path:    "~/.local/share/chefiq/chefiq.db",
		},
		Publish: Publish{
			Endpoint:       publish.DefaultEndpoint,
			TimeoutSeconds: 20,
		},
		Logging: Logging{
			Level: "normal",
		},
	}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/chefiq/config.toml")
}

// Load parses the configuration file at path, falling back to the
// default location when path is empty. A missing file yields the
// defaults. Environment variables override file values last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	} else {
		p, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CHEFIQ_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("CHEFIQ_DB_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("CHEFIQ_PUBLISH_ENDPOINT"); v != "" {
		c.Publish.Endpoint = v
	}
	if v := os.Getenv("CHEFIQ_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CHEFIQ_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func (c *Config) normalize() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	p, err := expandPath(c.Storage.Path)
	if err != nil {
		return err
	}
	c.Storage.Path = p
	if c.Logging.File != "" {
		p, err := expandPath(c.Logging.File)
		if err != nil {
			return err
		}
		c.Logging.File = p
	}
	return nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("storage.backend must be sqlite or memory, got %q", c.Storage.Backend)
	}
	if c.Storage.Backend == "sqlite" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path required for the sqlite backend")
	}
	switch c.Logging.Level {
	case "off", "normal", "verbose":
	default:
		return fmt.Errorf("logging.level must be off, normal, or verbose, got %q", c.Logging.Level)
	}
	if c.Publish.Endpoint == "" {
		return fmt.Errorf("publish.endpoint must not be empty")
	}
	if c.Publish.TimeoutSeconds <= 0 {
		return fmt.Errorf("publish.timeout_seconds must be positive, got %d", c.Publish.TimeoutSeconds)
	}
	return nil
}

func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path), nil
}
