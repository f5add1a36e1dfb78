package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the service logger from the configured level. Output is
// JSON on stdout; source locations are attached at the debug and error
// levels, where the extra detail is worth the log volume.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	level := c.slogLevel()

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug || level == slog.LevelError,
	})

	return slog.New(handler)
}

// slogLevel maps the LOG_LEVEL string onto a slog level, defaulting to info
// when the value is unrecognized.
func (c *LoggerConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
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
