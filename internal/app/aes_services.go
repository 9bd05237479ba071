package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// aesService implements the AESService interface
type aesService struct {
	aesProcessor crypto.AESProcessor
	logger       logger.Logger
}

// NewAESService creates a new instance of AESService
func NewAESService(aesProcessor crypto.AESProcessor, logger logger.Logger) (AESService, error) {
	if aesProcessor == nil {
		return nil, fmt.Errorf("aes processor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &aesService{
		aesProcessor: aesProcessor,
		logger:       logger,
	}, nil
}

// EncryptBasic encrypts text with a passphrase using the OpenSSL compatible container.
func (s *aesService) EncryptBasic(text, passphrase string) (*Result, error) {
	if text == "" || passphrase == "" {
		return nil, fmt.Errorf("%w: text and passphrase are required", codec.ErrInvalidConfiguration)
	}

	container, err := s.aesProcessor.EncryptWithPassphrase([]byte(text), passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	output, err := codec.Encode(container, codec.FormatBase64)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Encrypted ", len(text), " bytes with passphrase")
	return &Result{Output: output, Info: basicInfo()}, nil
}

// DecryptBasic decrypts a Base64 passphrase container produced by EncryptBasic or openssl.
func (s *aesService) DecryptBasic(text, passphrase string) (*Result, error) {
	if text == "" || passphrase == "" {
		return nil, fmt.Errorf("%w: text and passphrase are required", codec.ErrInvalidConfiguration)
	}

	container, err := codec.Decode(codec.StripLineBreaks(strings.TrimSpace(text)), codec.FormatBase64)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.aesProcessor.DecryptWithPassphrase(container, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	if !utf8.Valid(plaintext) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8, check the passphrase", crypto.ErrDecryptionFailed)
	}

	s.logger.Info("Decrypted ", len(plaintext), " bytes with passphrase")
	return &Result{Output: string(plaintext), Info: basicInfo()}, nil
}

// Encrypt runs the advanced form and renders the ciphertext in req.Format.
func (s *aesService) Encrypt(req AESRequest) (*Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.IV == "" && req.Mode != crypto.ModeECB {
		iv, err := s.GenerateIV()
		if err != nil {
			return nil, err
		}
		req.IV = iv
		s.logger.Debug("No IV supplied, generated one")
	}

	params, format, err := s.cipherParams(req)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.aesProcessor.Encrypt([]byte(req.Text), params)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	output, err := codec.Encode(ciphertext, format)
	if err != nil {
		return nil, err
	}

	return &Result{Output: output, Info: advancedInfo(req, "Output Format")}, nil
}

// Decrypt parses the ciphertext from req.Format and requires the plaintext to be valid UTF-8.
func (s *aesService) Decrypt(req AESRequest) (*Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.IV == "" && req.Mode != crypto.ModeECB {
		return nil, fmt.Errorf("%w: an IV is required to decrypt in %s mode", codec.ErrInvalidConfiguration, req.Mode)
	}

	params, format, err := s.cipherParams(req)
	if err != nil {
		return nil, err
	}

	input := req.Text
	if format != codec.FormatText {
		input = codec.StripLineBreaks(strings.TrimSpace(input))
	}
	ciphertext, err := codec.Decode(input, format)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.aesProcessor.Decrypt(ciphertext, params)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	if !utf8.Valid(plaintext) {
		return nil, fmt.Errorf("%w: plaintext is not valid UTF-8, check key, IV, mode and padding", crypto.ErrDecryptionFailed)
	}

	return &Result{Output: string(plaintext), Info: advancedInfo(req, "Input Format")}, nil
}

// GenerateIV returns a random alphanumeric IV.
func (s *aesService) GenerateIV() (string, error) {
	iv, err := codec.GenerateRandomIV()
	if err != nil {
		return "", err
	}
	return iv, nil
}

func (s *aesService) cipherParams(req AESRequest) (crypto.CipherParams, codec.Format, error) {
	format, err := codec.ParseFormat(req.Format)
	if err != nil {
		return crypto.CipherParams{}, "", err
	}

	keySize := codec.KeySize(req.KeySize)
	key, err := codec.NormalizeKey(req.Key, keySize)
	if err != nil {
		return crypto.CipherParams{}, "", err
	}
	if len(req.Key) < keySize.Bytes() {
		s.logger.Warn("Key shorter than ", keySize.Bytes(), " bytes is padded with NUL bytes")
	}

	params := crypto.CipherParams{
		Key:     key,
		Mode:    req.Mode,
		Padding: req.Padding,
	}
	if req.Mode != crypto.ModeECB || req.IV != "" {
		params.IV = codec.NormalizeIV(req.IV)
	}
	return params, format, nil
}

func basicInfo() string {
	return fmt.Sprintf("Key Size: 256 bits\nMode: %s\nPadding: %s\nKey Derivation: EVP_BytesToKey (MD5)",
		crypto.ModeCBC, crypto.PaddingPkcs7)
}

func advancedInfo(req AESRequest, formatLabel string) string {
	return fmt.Sprintf("Key Size: %d bits\nMode: %s\nPadding: %s\n%s: %s\nIV: %s",
		req.KeySize, req.Mode, req.Padding, formatLabel, req.Format, req.IV)
}
