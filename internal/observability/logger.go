package observability

import (
	"log/slog"
	"os"
)

// Logger is the narrow logging surface services depend on.
type Logger struct {
	slog *slog.Logger
}

func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{slog: slog.New(handler)}
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.slog.Info(msg)
}

func (l *Logger) Error(msg string) {
	if l == nil {
		return
	}
	l.slog.Error(msg)
}
