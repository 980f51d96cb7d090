package bitkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitkit-specific context.
// This provides structured logging with consistent field names.
//
// Only the parallel range operations log; the proxies and the sequential
// algorithms never do.
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithWordBits adds the word width to the logger.
func (l *Logger) WithWordBits(digits uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("word_bits", digits),
	}
}

// LogParallelCount logs a parallel count operation.
func (l *Logger) LogParallelCount(ctx context.Context, bits, chunks, result int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parallel count failed",
			"bits", bits,
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parallel count completed",
			"bits", bits,
			"chunks", chunks,
			"result", result,
		)
	}
}
