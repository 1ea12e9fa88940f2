package fftwgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fftwgo-specific context.
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

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPrecision adds a precision field to the logger.
func (l *Logger) WithPrecision(p Precision) *Logger {
	return &Logger{
		Logger: l.Logger.With("precision", p.String()),
	}
}

// LogInitThreads logs a thread subsystem initialization.
func (l *Logger) LogInitThreads(ctx context.Context, profile ThreadingProfile, err error) {
	if err != nil {
		l.ErrorContext(ctx, "thread initialization failed",
			"profile", profile.String(),
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "threads initialized",
			"profile", profile.String(),
		)
	}
}

// LogThreadCount logs a thread count change.
func (l *Logger) LogThreadCount(ctx context.Context, requested, applied int) {
	if requested != applied {
		l.WarnContext(ctx, "thread count clamped",
			"requested", requested,
			"applied", applied,
		)
		return
	}
	l.InfoContext(ctx, "thread count configured",
		"threads", applied,
	)
}

// LogPlan logs a guarded plan creation.
func (l *Logger) LogPlan(ctx context.Context, threads int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "plan creation failed",
			"threads", threads,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "plan created",
			"threads", threads,
		)
	}
}

// LogWisdom logs a wisdom import or export.
func (l *Logger) LogWisdom(ctx context.Context, op WisdomOp, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "wisdom "+op.String()+" failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "wisdom "+op.String()+" completed",
			"path", path,
		)
	}
}
