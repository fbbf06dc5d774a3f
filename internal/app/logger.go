package app

import (
	"log/slog"
	"os"
	"strings"
)

// newLogger returns a JSON logger in production and a human-readable text
// logger at debug level during development.
func newLogger(env string) *slog.Logger {
	if strings.EqualFold(env, "development") {
		h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
		return slog.New(h)
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h)
}
