// file: keydex/config/config.go
// Package config loads the application settings from a JSON file.
// A missing file is not an error, the defaults apply.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"

	"github.com/keydex/keydex/pkg/x_log"
)

const (
	defaultPath = "./keydex.json"
	envPath     = "KEYDEX_CONFIG"
)

// Config is the full application configuration.
type Config struct {
	MaxKeys  int          `json:"max_keys"`  // key capacity per node
	HTTPAddr string       `json:"http_addr"` // api listen address
	Theme    string       `json:"theme"`     // console theme: dark, light
	Seed     int64        `json:"seed"`      // rng seed, 0 means time-based
	Log      x_log.Config `json:"log"`       // logging section
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxKeys:  3,
		HTTPAddr: ":8080",
		Theme:    "dark",
		Log: x_log.Config{
			Level:     "info",
			ToConsole: true,
			Style:     "dark",
		},
	}
}

// Load reads the config from path. An empty path falls back to the
// KEYDEX_CONFIG environment variable, then ./keydex.json.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if envp := os.Getenv(envPath); envp != "" {
			path = envp
		} else {
			path = defaultPath
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// silently fall back to defaults
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if v, ok := raw["max_keys"].(float64); ok {
		cfg.MaxKeys = int(v)
	}
	if v, ok := raw["http_addr"].(string); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := raw["theme"].(string); ok {
		cfg.Theme = v
	}
	if v, ok := raw["seed"].(float64); ok {
		cfg.Seed = int64(v)
	}
	if v, ok := raw["log"]; ok {
		if err := mapstructure.Decode(v, &cfg.Log); err != nil {
			return cfg, fmt.Errorf("parse log section in %s: %w", path, err)
		}
	}

	if cfg.MaxKeys < 1 {
		return cfg, fmt.Errorf("max_keys must be at least 1, got %d", cfg.MaxKeys)
	}
	return cfg, nil
}
