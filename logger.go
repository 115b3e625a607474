package blobcheck

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with harness-specific helpers.
// The handler is injected, never global, so tests can capture output.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithStore adds a store name field to the logger.
func (l *Logger) WithStore(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("store", name),
	}
}

// LogWrite logs one timed write in the harness's progress format.
func (l *Logger) LogWrite(ctx context.Context, path string, n int, elapsed time.Duration, crc uint32) {
	l.InfoContext(ctx, "wrote bytes",
		"path", path,
		"bytes", n,
		"elapsed_ms", elapsed.Milliseconds(),
		"crc32c", crc,
	)
}

// LogVerified logs a completed round-trip verification.
func (l *Logger) LogVerified(ctx context.Context, path string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verification failed",
			"path", path,
			"bytes", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "verification passed",
			"path", path,
			"bytes", n,
		)
	}
}
