package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns a console logger at error level so test output stays quiet.
// It does not touch the process-wide logger singleton.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.New(config.NewConsoleLoggerSettings(config.LogLevelError))
	require.NoError(t, err)

	return log
}
