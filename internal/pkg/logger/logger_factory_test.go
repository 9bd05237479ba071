//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func fileSettings(path string) *config.LoggerSettings {
	return &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestInitLogger_Console(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(config.NewConsoleLoggerSettings(config.LogLevelWarning)))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestInitLogger_File(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	path := filepath.Join(t.TempDir(), "rest-api.log")
	require.NoError(t, InitLogger(fileSettings(path)))

	log, err := GetLogger()
	require.NoError(t, err)
	log.Info("server started")
	require.NoError(t, Close(log))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestInitLogger_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.LoggerSettings
	}{
		{"nil settings", nil},
		{"unknown level", &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}},
		{"unknown sink", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}},
		{"file sink without rotation", &config.LoggerSettings{
			LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "/tmp/ctb.log",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			assert.Error(t, InitLogger(tt.settings))

			log, err := GetLogger()
			assert.ErrorIs(t, err, ErrNotInitialized)
			assert.Nil(t, log)
		})
	}
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(config.NewConsoleLoggerSettings(config.LogLevelInfo)))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(config.NewConsoleLoggerSettings(config.LogLevelDebug)))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestNew_DoesNotTouchSingleton(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	log, err := New(config.NewConsoleLoggerSettings(config.LogLevelDebug))
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = GetLogger()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug},
		{config.LogLevelInfo, slog.LevelInfo},
		{config.LogLevelWarning, slog.LevelWarn},
		{config.LogLevelError, slog.LevelError},
		{config.LogLevelCritical, slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "key size 256 bits", formatArgs("key size ", 256, " bits"))
	assert.Equal(t, "AES-128-CTR", formatArgs("AES-", 128, "-", "CTR"))
}
