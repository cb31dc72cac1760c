// file: keydex/pkg/x_log/x_log.go

// Package x_log configures zerolog for keydex: a lipgloss-styled
// console writer on terminals, plain console output elsewhere, and an
// optional lumberjack-rotated JSON file.
package x_log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalMu sync.RWMutex
	global   = zerolog.Nop()
)

//
// ---------- Initialization ----------

// Init sets up the global logger from the default config file, falling
// back to the built-in defaults when no file exists.
func Init(module string) error {
	cfg, err := LoadConfig("")
	if err != nil {
		return err
	}
	InitWithConfig(cfg, module)
	return nil
}

// InitWithConfig sets up the global logger from an explicit config.
// The module name is attached to every event.
func InitWithConfig(cfg *Config, module string) {
	applyDefaults(cfg)
	zerolog.SetGlobalLevel(toZerologLevel(cfg.Level))

	var writers []io.Writer
	if cfg.ToConsole {
		writers = append(writers, consoleWriter(cfg))
	}
	if cfg.ToFile {
		writers = append(writers, fileWriter(cfg))
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("module", module).
		Logger()

	SetGlobal(logger)
}

//
// ---------- Writers ----------

// consoleWriter renders through the configured theme on a terminal and
// falls back to the stock console writer when stderr is redirected.
func consoleWriter(cfg *Config) io.Writer {
	w := ConsoleWriterWithStyles(DefaultStylesByName(cfg.Style))
	w.Out = os.Stderr
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		plain := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
		return plain
	}
	return w
}

// fileWriter emits JSON lines into a size/age-rotated file.
func fileWriter(cfg *Config) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

//
// ---------- Accessors ----------

// SetGlobal replaces the process-wide logger.
func SetGlobal(l zerolog.Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = l
}

// L returns the process-wide logger.
func L() zerolog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// With returns a child of the global logger named after a component.
func With(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}

//
// ---------- Helpers ----------

func toZerologLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
