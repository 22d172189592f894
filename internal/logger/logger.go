package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init initializes the global logger.
// env: "development" or "production".
func Init(env string) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if env == "development" {
		// Development: readable text output
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Production: JSON for log collectors
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initializing a development
// fallback if Init was never called.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs and terminates the process.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With creates a child logger with extra fields.
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// WorkerLog reports a background sweep outcome.
func WorkerLog(worker, operation string, affected int64, err error) {
	fields := []any{
		"worker", worker,
		"operation", operation,
		"rows_affected", affected,
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		GetLogger().Error("worker operation failed", fields...)
	} else {
		GetLogger().Info("worker operation completed", fields...)
	}
}
