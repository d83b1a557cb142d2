// Package logger provides structured logging functionality for the application.
//
// It builds a JSON log/slog logger with the configured level and carries
// request-scoped loggers (tagged with a trace ID) through context.Context.
package logger
