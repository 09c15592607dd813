// Package config stores developer CLI defaults in a TOML file.
//
// Only the CLI reads this; when the host invokes the module it passes
// everything per call and no configuration file is touched.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds CLI defaults.
type Config struct {
	// TokenFile is a file containing an OAuth2 access token, used when
	// --token is not given.
	TokenFile string `toml:"token_file"`

	// Verbose enables debug logging without passing --verbose.
	Verbose bool `toml:"verbose"`
}

// DefaultDir returns the default config directory, ~/.googlesheets.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".googlesheets"), nil
}

// Load reads the config from dir, or from the default directory when
// dir is empty. A missing file yields a zero Config, not an error.
func Load(dir string) (*Config, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the config to dir, creating the directory if needed.
func (c *Config) Save(dir string) error {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0600)
}
