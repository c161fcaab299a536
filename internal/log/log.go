// ABOUTME: Level-filtered logging wrapper around charmbracelet/log for coach-mark diagnostics
// ABOUTME: Global level via SetLevel; writes to stderr so output never mixes with the TUI frame

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  atomic.Int64
	logger atomic.Pointer[charmlog.Logger]
)

func init() {
	level.Store(int64(LevelInfo))
	SetOutput(os.Stderr)
}

// SetOutput redirects all log output to w.
func SetOutput(w io.Writer) {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "coachmark",
		Level:           charmlog.DebugLevel, // filtering happens here, not in charmlog
	})
	logger.Store(l)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// ParseLevel maps "debug", "info", "warn", or "error" to a level.
func ParseLevel(s string) (slog.Level, error) {
	l, err := charmlog.ParseLevel(s)
	if err != nil || l > charmlog.ErrorLevel {
		return LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return slog.Level(l), nil
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// Enabled reports whether messages at l are emitted.
func Enabled(l slog.Level) bool {
	return l >= slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if !Enabled(LevelDebug) {
		return
	}
	logger.Load().Debugf(format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if !Enabled(LevelInfo) {
		return
	}
	logger.Load().Infof(format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if !Enabled(LevelWarn) {
		return
	}
	logger.Load().Warnf(format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	logger.Load().Errorf(format, args...)
}
