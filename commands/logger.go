package commands

import (
	"log/slog"
	"os"
)

// logger is the package logger for the transfer engine. Set DEBUG in the
// environment to enable debug-level output.
var logger *slog.Logger

func init() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
