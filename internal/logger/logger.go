package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/Garsondee/grannys-house/internal/config"
)

// Setup configures the global slog logger based on environment. Output goes
// to stderr so the headless report can own stdout.
func Setup(cfg *config.Config) *slog.Logger {
	return New(cfg, os.Stderr)
}

// New builds the logger for cfg writing to w and makes it the default.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithRunID tags every line of one game session.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With("run_id", runID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
