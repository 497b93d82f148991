package logger

import (
	"io"
	"log/slog"
	"os"
	ports "taskara-review-service/internal/domain/ports/output"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
	envTest  = "test"
)

var _ ports.Logger = (*Logger)(nil)

type Logger struct {
	*slog.Logger
}

// New builds the logger for the given environment. Unknown environments log like prod.
func New(env string) *Logger {
	var h slog.Handler
	switch env {
	case envLocal, envDev:
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envTest:
		h = slog.NewTextHandler(io.Discard, nil)
	case envProd:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(h)}
}

func (l *Logger) With(args ...any) ports.Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
