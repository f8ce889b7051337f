package vecmask

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecmask-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithID adds an id field to the logger.
func (l *Logger) WithID(id uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithSize adds a size (bit count) field to the logger.
func (l *Logger) WithSize(size uint32) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(ctx context.Context, id uint32, changed bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "delete failed",
			"id", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "delete completed",
			"id", id,
			"changed", changed,
		)
	}
}

// LogRestore logs a restore operation.
func (l *Logger) LogRestore(ctx context.Context, id uint32, changed bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "restore failed",
			"id", id,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "restore completed",
			"id", id,
			"changed", changed,
		)
	}
}

// LogMerge logs a merge of an exclusion mask.
func (l *Logger) LogMerge(ctx context.Context, maskSize uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge failed",
			"mask_size", maskSize,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "merge completed",
			"mask_size", maskSize,
		)
	}
}

// LogScan logs a filtered scan.
func (l *Logger) LogScan(ctx context.Context, visited, excluded int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"visited", visited,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"visited", visited,
			"excluded", excluded,
		)
	}
}
