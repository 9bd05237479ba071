//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services backed by the real processors
type TestServices struct {
	AESService    AESService
	Base64Service Base64Service
	MD5Service    MD5Service
}

// SetupTestServices initializes all application services for tests
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	aesProcessor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err)
	base64Processor, err := cryptography.NewBase64Processor(logger)
	require.NoError(t, err)
	md5Processor, err := cryptography.NewMD5Processor(logger)
	require.NoError(t, err)

	aesService, err := NewAESService(aesProcessor, logger)
	require.NoError(t, err)
	base64Service, err := NewBase64Service(base64Processor, logger)
	require.NoError(t, err)
	md5Service, err := NewMD5Service(md5Processor, logger)
	require.NoError(t, err)

	return &TestServices{
		AESService:    aesService,
		Base64Service: base64Service,
		MD5Service:    md5Service,
	}
}
