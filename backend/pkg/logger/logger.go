// backend/pkg/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is a wrapper around slog.Logger writing human readable lines.
type Logger struct {
	*slog.Logger
}

var level = new(slog.LevelVar)

// New creates a logger writing to stdout, tagged with the given component.
func New(component string) *Logger {
	return NewWithWriter(os.Stdout, component)
}

func NewWithWriter(w io.Writer, component string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler).With("component", component),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetDebug toggles debug output for every logger created by this package.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

