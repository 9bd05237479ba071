//go:build unit
// +build unit

package crypto

import (
	"bytes"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"

	"github.com/stretchr/testify/assert"
)

func TestCipherParamsValidation(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, AESKeySize256)
	iv := bytes.Repeat([]byte{0x02}, 16)

	tests := []struct {
		name          string
		params        CipherParams
		expectedError bool
	}{
		{"valid CBC", CipherParams{Key: key, IV: iv, Mode: ModeCBC, Padding: PaddingPkcs7}, false},
		{"ECB without IV", CipherParams{Key: key[:16], Mode: ModeECB, Padding: PaddingZeroPadding}, false},
		{"missing key", CipherParams{IV: iv, Mode: ModeCBC, Padding: PaddingPkcs7}, true},
		{"key of 20 bytes", CipherParams{Key: key[:20], IV: iv, Mode: ModeCBC, Padding: PaddingPkcs7}, true},
		{"short IV", CipherParams{Key: key, IV: iv[:8], Mode: ModeCTR, Padding: PaddingNoPadding}, true},
		{"unknown mode", CipherParams{Key: key, IV: iv, Mode: "GCM", Padding: PaddingPkcs7}, true},
		{"unknown padding", CipherParams{Key: key, IV: iv, Mode: ModeCBC, Padding: "Pkcs5"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectedError {
				assert.ErrorIs(t, err, codec.ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDigestOptionsValidation(t *testing.T) {
	assert.NoError(t, DigestOptions{Iterations: 1}.Validate())
	assert.NoError(t, DigestOptions{Salt: []byte("pepper"), Iterations: 1000}.Validate())
	assert.ErrorIs(t, DigestOptions{Iterations: 0}.Validate(), codec.ErrInvalidConfiguration)
}

func TestBase64OptionsValidation(t *testing.T) {
	assert.NoError(t, Base64Options{}.Validate())
	assert.NoError(t, Base64Options{Variant: Base64MIME, LineBreaks: 64}.Validate())
	assert.Error(t, Base64Options{Variant: "base32"}.Validate())
	assert.Error(t, Base64Options{LineBreaks: -4}.Validate())
}
