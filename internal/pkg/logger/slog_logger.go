package logger

import (
	"io"
	"log/slog"
	"os"
)

// slogLogger adapts a slog handler to Logger. closer is the rotating writer of file loggers.
type slogLogger struct {
	logger *slog.Logger
	closer io.Closer
}

func newSlogLogger(handler slog.Handler, closer io.Closer) *slogLogger {
	return &slogLogger{
		logger: slog.New(handler).With("app", AppName),
		closer: closer,
	}
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at error level and exits with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	_ = l.Close()
	os.Exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}

func (l *slogLogger) With(key string, value interface{}) Logger {
	return &slogLogger{
		logger: l.logger.With(key, value),
		closer: l.closer,
	}
}

// Close flushes and closes the rotating file, if any.
func (l *slogLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Close releases resources held by log. Loggers without a file are left untouched.
func Close(log Logger) error {
	if c, ok := log.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
