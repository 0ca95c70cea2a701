// Package logging is the structured logger shared by every shade package. It
// wraps log/slog and writes to a rotated file, stderr or nowhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Stderr as Config.FilePath sends logs to standard error.
const Stderr = "-"

// Logger is a slog.Logger that knows whether it discards its output.
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat selects the slog handler.
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the log file, Stderr, or empty to disable logging.
	FilePath string
	Level    slog.Level
	Format   LogFormat
	// Rotation settings, only used for files.
	MaxSizeMB  int
	MaxBackups int
}

var (
	global atomic.Pointer[Logger]
	closer atomic.Pointer[lumberjack.Logger]

	noopLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. A previously opened log file is closed.
func Init(cfg Config) error {
	var (
		l    *Logger
		file *lumberjack.Logger
	)
	switch cfg.FilePath {
	case "":
		l = noopLogger
	case Stderr:
		l = New(os.Stderr, cfg.Level, cfg.Format)
	default:
		file = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		l = New(file, cfg.Level, cfg.Format)
	}

	global.Store(l)
	if prev := closer.Swap(file); prev != nil {
		return prev.Close()
	}
	return nil
}

// New builds a logger writing to w.
func New(w io.Writer, level slog.Level, format LogFormat) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler), enabled: true}
}

// Get returns the global logger, or a noop logger before Init.
func Get() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return noopLogger
}

// SetGlobal installs l as the global logger and returns a function restoring
// the previous one.
func SetGlobal(l *Logger) func() {
	prev := global.Swap(l)
	return func() { global.Store(prev) }
}

// Noop returns a logger that discards everything.
func Noop() *Logger {
	return noopLogger
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), enabled: l.enabled}
}

// IsEnabled reports whether l writes anywhere.
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Debug logs through the global logger.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Warn logs through the global logger.
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat maps a format name to a LogFormat, defaulting to text.
func ParseFormat(format string) LogFormat {
	if strings.EqualFold(format, string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// Shutdown closes the log file, if any, and disables logging.
func Shutdown() {
	global.Store(noopLogger)
	if f := closer.Swap(nil); f != nil {
		_ = f.Close()
	}
}
