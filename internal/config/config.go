// Package config loads unitconv settings from a TOML file.
// Settings only shape CLI output; the library itself is configuration-free.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/dimensional/internal/logger"
)

// Config holds the unitconv CLI settings.
type Config struct {
	// Precision is the number of fraction digits printed for results.
	Precision int `toml:"precision"`
	// DefaultDimension is used when convert is called without --dim.
	DefaultDimension string `toml:"default_dimension"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Precision:        6,
		DefaultDimension: "force",
	}
}

// Load reads the config file at path. An empty path falls back to
// ~/.unitconv/config.toml. A missing file is not an error; it yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Warn("cannot resolve home directory, using defaults: %v", err)
			return cfg, nil
		}
		path = filepath.Join(home, ".unitconv", "config.toml")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	// A float64 carries at most 17 significant decimal digits.
	if cfg.Precision < 0 || cfg.Precision > 17 {
		logger.Warn("precision %d out of range, using default", cfg.Precision)
		cfg.Precision = Default().Precision
	}

	return cfg, nil
}
