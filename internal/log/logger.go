// Package log provides the shared slog setup for alfrusco. A workflow's
// stdout is reserved for the script-filter JSON document, so all logging
// goes to stderr and, once the workflow configuration is known, to the
// workflow.log file in the cache directory as well.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Setup initializes the global logger. The first call wins; later calls
// are no-ops so library internals and host workflows cannot fight over
// the sink.
func Setup(w io.Writer, level slog.Level) {
	once.Do(func() {
		if w == nil {
			w = os.Stderr
		}
		handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
}

// Get returns the configured logger, or a stderr default if Setup hasn't
// been called.
func Get() *slog.Logger {
	if logger == nil {
		Setup(os.Stderr, slog.LevelInfo)
	}
	return logger
}

// WithComponent returns a logger with the component field set.
func WithComponent(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}

// WithJob returns a logger with the job field set.
func WithJob(name string) *slog.Logger {
	return Get().With(slog.String("job", name))
}

// Info logs at INFO level.
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Warn logs at WARN level.
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs at ERROR level.
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}
