// file: keydex/pkg/x_log/config.go
package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Config ----------

// Config controls the logger output targets, level and rotation.
type Config struct {
	Level       string `json:"level" mapstructure:"level"`               // debug, info, warn, error
	LogFile     string `json:"log_file" mapstructure:"log_file"`         // rotated file target
	ToConsole   bool   `json:"to_console" mapstructure:"to_console"`     // write styled output to stderr
	ToFile      bool   `json:"to_file" mapstructure:"to_file"`           // write JSON output to LogFile
	ColoredFile bool   `json:"colored_file" mapstructure:"colored_file"` // keep ANSI sequences in the file
	Style       string `json:"style" mapstructure:"style"`               // console theme: dark, light
	MaxSize     int    `json:"max_size" mapstructure:"max_size"`         // MB before rotation
	MaxBackups  int    `json:"max_backups" mapstructure:"max_backups"`   // rotated files kept
	MaxAge      int    `json:"max_age" mapstructure:"max_age"`           // days before deletion
	Compress    bool   `json:"compress" mapstructure:"compress"`         // gzip rotated files
}

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

var defaultConfig = Config{
	Level:       "info",
	LogFile:     "logs/keydex.log",
	ToConsole:   true,
	ToFile:      false,
	ColoredFile: false,
	Style:       "dark",
	MaxSize:     10, // MB
	MaxBackups:  5,  // rotated files
	MaxAge:      7,  // days
	Compress:    true,
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	// Resolve path
	if path == "" {
		path = os.Getenv("XLOG_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
	}

	// Read file
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Return default config if file not found
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	// Parse JSON
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

// applyDefaults fills missing config values from defaultConfig.
func applyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
