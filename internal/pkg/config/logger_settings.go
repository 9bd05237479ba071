package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log levels accepted in LoggerSettings.LogLevel
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks accepted in LoggerSettings.LogType
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log sink and level. The rotation fields apply to the file sink only:
// MaxSize in megabytes (1-100), MaxBackups rotated files kept (1-10), MaxAge in days (1-365).
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,omitempty,min=1,max=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,omitempty,min=1,max=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,omitempty,min=1,max=365"`
}

// NewConsoleLoggerSettings returns settings for a console logger at the given level.
func NewConsoleLoggerSettings(level string) *LoggerSettings {
	return &LoggerSettings{
		LogLevel: level,
		LogType:  LogTypeConsole,
	}
}

// Validate checks the level, the sink and, for the file sink, the path and rotation bounds.
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed for LoggerSettings: %v", messages)
	}
	return fmt.Errorf("validation failed for LoggerSettings: %w", err)
}
