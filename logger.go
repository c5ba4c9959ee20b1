package intset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with intset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger returns a Logger that discards all log output.
func NoopLogger() *Logger {
	return noopLogger
}

var noopLogger = &Logger{
	Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})),
}

// LogResize logs a change of the storage word count.
func (l *Logger) LogResize(op string, oldWords, newWords int) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("intset storage resized",
		"op", op,
		"old_words", oldWords,
		"new_words", newWords,
	)
}

// LogFanIn logs a parallel reduction over many sets.
func (l *Logger) LogFanIn(ctx context.Context, op string, inputs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fan-in failed",
			"op", op,
			"inputs", inputs,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fan-in completed",
			"op", op,
			"inputs", inputs,
		)
	}
}
