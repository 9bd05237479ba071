// Package logger provides the leveled Logger used across the toolbox, backed by log/slog.
package logger

// AppName is attached to every record as the "app" attribute.
const AppName = "crypto-toolbox"

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a Logger that adds key=value to every record, e.g. a request ID.
	With(key string, value interface{}) Logger
}
