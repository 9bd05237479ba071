package logger

import (
	"log/slog"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger creates a JSON logger writing to settings.FilePath, rotated by size and age and gzip compressed.
// The returned Logger implements io.Closer.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	return newSlogLogger(handler, writer)
}
