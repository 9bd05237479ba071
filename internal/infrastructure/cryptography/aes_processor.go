package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoDomain.AESProcessor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of 16, 24 or 32 bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	switch keySize {
	case cryptoDomain.AESKeySize128, cryptoDomain.AESKeySize192, cryptoDomain.AESKeySize256:
	default:
		return nil, fmt.Errorf("%w: invalid AES key size %d bytes", codec.ErrInvalidConfiguration, keySize)
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info("Generated AES key of ", keySize*8, " bits")
	return key, nil
}

// Encrypt pads plaintext according to params.Padding and encrypts it in params.Mode.
func (a *aesProcessor) Encrypt(plaintext []byte, params cryptoDomain.CipherParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(params.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	padded, err := pad(plaintext, params.Padding, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	if isBlockMode(params.Mode) && len(padded)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %s with %s requires input in multiples of %d bytes, got %d",
			codec.ErrInvalidConfiguration, params.Mode, params.Padding, aes.BlockSize, len(padded))
	}

	ciphertext := make([]byte, len(padded))
	switch params.Mode {
	case cryptoDomain.ModeCBC:
		cipher.NewCBCEncrypter(block, params.IV).CryptBlocks(ciphertext, padded)
	case cryptoDomain.ModeECB:
		for i := 0; i < len(padded); i += aes.BlockSize {
			block.Encrypt(ciphertext[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
		}
	default:
		stream, err := newStream(block, params, true)
		if err != nil {
			return nil, err
		}
		stream.XORKeyStream(ciphertext, padded)
	}

	a.logger.Debug("AES-", len(params.Key)*8, "-", params.Mode, " encryption succeeded")
	return ciphertext, nil
}

// Decrypt decrypts ciphertext in params.Mode and strips params.Padding.
// Any inconsistency is reported as ErrDecryptionFailed and no plaintext is returned.
func (a *aesProcessor) Decrypt(ciphertext []byte, params cryptoDomain.CipherParams) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(params.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	if isBlockMode(params.Mode) && len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size",
			cryptoDomain.ErrDecryptionFailed, len(ciphertext))
	}

	padded := make([]byte, len(ciphertext))
	switch params.Mode {
	case cryptoDomain.ModeCBC:
		cipher.NewCBCDecrypter(block, params.IV).CryptBlocks(padded, ciphertext)
	case cryptoDomain.ModeECB:
		for i := 0; i < len(ciphertext); i += aes.BlockSize {
			block.Decrypt(padded[i:i+aes.BlockSize], ciphertext[i:i+aes.BlockSize])
		}
	default:
		stream, err := newStream(block, params, false)
		if err != nil {
			return nil, err
		}
		stream.XORKeyStream(padded, ciphertext)
	}

	plaintext, err := unpad(padded, params.Padding, aes.BlockSize)
	if err != nil {
		a.logger.Warn("AES decryption rejected: ", err)
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrDecryptionFailed, err)
	}

	a.logger.Debug("AES-", len(params.Key)*8, "-", params.Mode, " decryption succeeded")
	return plaintext, nil
}

func isBlockMode(mode string) bool {
	return mode == cryptoDomain.ModeCBC || mode == cryptoDomain.ModeECB
}

func newStream(block cipher.Block, params cryptoDomain.CipherParams, encrypt bool) (cipher.Stream, error) {
	switch params.Mode {
	case cryptoDomain.ModeCFB:
		if encrypt {
			return cipher.NewCFBEncrypter(block, params.IV), nil //nolint:staticcheck // CFB is a user selectable legacy mode
		}
		return cipher.NewCFBDecrypter(block, params.IV), nil //nolint:staticcheck // CFB is a user selectable legacy mode
	case cryptoDomain.ModeOFB:
		return cipher.NewOFB(block, params.IV), nil //nolint:staticcheck // OFB is a user selectable legacy mode
	case cryptoDomain.ModeCTR:
		return cipher.NewCTR(block, params.IV), nil
	default:
		return nil, fmt.Errorf("%w: unsupported mode %q", codec.ErrInvalidConfiguration, params.Mode)
	}
}
