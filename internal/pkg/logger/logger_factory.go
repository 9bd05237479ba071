package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger before InitLogger succeeded.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// levels maps configured level names onto slog levels. slog has no critical level.
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process-wide logger once. Later calls return the first result.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = New(settings)
	})
	return loggerErr
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, ErrNotInitialized
	}
	return loggerInstance, nil
}

// New builds a logger without touching the process-wide one. Tests and commands that need
// their own level use this instead of InitLogger.
func New(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("logger settings are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings), nil
	}
	return NewConsoleLogger(settings.LogLevel), nil
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}
