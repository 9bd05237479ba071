//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger := NewFileLogger(&config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
	require.NotNil(t, logger)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.With("operation", "encrypt").Warn("warn message")
	logger.Error("error message")
	require.NoError(t, Close(logger))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.NotContains(t, logOutput, "debug message")
	assert.Contains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "warn message")
	assert.Contains(t, logOutput, "error message")
	assert.Contains(t, logOutput, `"level":"INFO"`)
	assert.Contains(t, logOutput, `"level":"WARN"`)
	assert.Contains(t, logOutput, `"level":"ERROR"`)
	assert.Contains(t, logOutput, `"app":"crypto-toolbox"`)
	assert.Contains(t, logOutput, `"operation":"encrypt"`)
}
