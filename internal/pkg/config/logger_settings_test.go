//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotatingFileSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelWarning,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/crypto-toolbox/rest-api.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

func TestLoggerSettings_Valid(t *testing.T) {
	tests := map[string]func(s *LoggerSettings){
		"rotating file sink": func(s *LoggerSettings) {},
		"upper rotation bounds": func(s *LoggerSettings) {
			s.MaxSize, s.MaxBackups, s.MaxAge = 100, 10, 365
		},
		"console sink needs no rotation": func(s *LoggerSettings) {
			s.LogType = LogTypeConsole
			s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge = "", 0, 0, 0
		},
		"console sink without file fields": func(s *LoggerSettings) {
			*s = *NewConsoleLoggerSettings(LogLevelCritical)
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := rotatingFileSettings()
			mutate(&s)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestLoggerSettings_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *LoggerSettings)
		want   string
	}{
		{"no level", func(s *LoggerSettings) { s.LogLevel = "" }, "Field: LogLevel, Tag: required"},
		{"unknown level", func(s *LoggerSettings) { s.LogLevel = "trace" }, "Field: LogLevel, Tag: oneof"},
		{"no sink", func(s *LoggerSettings) { s.LogType = "" }, "Field: LogType, Tag: required"},
		{"unknown sink", func(s *LoggerSettings) { s.LogType = "syslog" }, "Field: LogType, Tag: oneof"},
		{"file sink without path", func(s *LoggerSettings) { s.FilePath = "" }, "Field: FilePath, Tag: required_if"},
		{"file sink without max size", func(s *LoggerSettings) { s.MaxSize = 0 }, "Field: MaxSize, Tag: required_if"},
		{"max size above bound", func(s *LoggerSettings) { s.MaxSize = 101 }, "Field: MaxSize, Tag: max"},
		{"max backups above bound", func(s *LoggerSettings) { s.MaxBackups = 11 }, "Field: MaxBackups, Tag: max"},
		{"max age above bound", func(s *LoggerSettings) { s.MaxAge = 400 }, "Field: MaxAge, Tag: max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := rotatingFileSettings()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
