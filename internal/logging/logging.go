// Package logging builds the structured logger used by the sqmat CLI.
//
// Library packages (matrix, nvector) never log: every failure is returned to
// the caller. Only the command layer reports progress and failures here.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Component attribute key added to every logger built by New.
const ComponentKey = "component"

// ParseLevel converts "debug", "info", "warn" or "error" (case-insensitive)
// into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: %w", err)
	}

	return level, nil
}

// New returns a text-handler logger writing to w at the given level, tagged
// with the component name.
func New(w io.Writer, level slog.Level, component string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	logger := slog.New(slog.NewTextHandler(w, opts))
	if component != "" {
		logger = logger.With(ComponentKey, component)
	}

	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
