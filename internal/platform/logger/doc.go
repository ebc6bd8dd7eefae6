// Package logger provides structured logging functionality for the application.
//
// It uses the standard library log/slog package to produce JSON logs with a
// configurable level, and carries request-scoped loggers in a context.Context.
package logger
