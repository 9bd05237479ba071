package app

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// md5Service implements the MD5Service interface
type md5Service struct {
	md5Processor crypto.MD5Processor
	logger       logger.Logger
}

// NewMD5Service creates a new instance of MD5Service
func NewMD5Service(md5Processor crypto.MD5Processor, logger logger.Logger) (MD5Service, error) {
	if md5Processor == nil {
		return nil, fmt.Errorf("md5 processor cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &md5Service{
		md5Processor: md5Processor,
		logger:       logger,
	}, nil
}

// Hash returns the hex MD5 of text.
func (s *md5Service) Hash(text string) (*Result, error) {
	return s.HashAdvanced(MD5Request{Text: text})
}

// HashAdvanced digests salt || encode(text) with the requested iterations and output format.
func (s *md5Service) HashAdvanced(req MD5Request) (*Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := encodeText(req.Text, req.Encoding)
	if err != nil {
		return nil, err
	}

	sum, err := s.md5Processor.Digest(data, digestOptions(req))
	if err != nil {
		return nil, fmt.Errorf("failed to hash: %w", err)
	}

	output, err := renderDigest(sum, req.Format)
	if err != nil {
		return nil, err
	}

	info := fmt.Sprintf("Text Length: %d characters\nEncoding: %s\n%s",
		len([]rune(req.Text)), req.Encoding, digestInfo(req))
	return &Result{Output: output, Info: info}, nil
}

// HashFile digests salt || contents of r.
func (s *md5Service) HashFile(r io.Reader, name string, size int64, req MD5Request) (*Result, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: no file provided", codec.ErrInvalidConfiguration)
	}

	sum, err := s.md5Processor.DigestReader(r, digestOptions(req))
	if err != nil {
		return nil, fmt.Errorf("failed to hash file %s: %w", name, err)
	}

	output, err := renderDigest(sum, req.Format)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Hashed file ", name, " (", size, " bytes)")
	info := fmt.Sprintf("File: %s\nSize: %s\n%s", name, formatFileSize(size), digestInfo(req))
	return &Result{Output: output, Info: info}, nil
}

// Verify hashes text as UTF-8 and compares the hex digest against expected.
func (s *md5Service) Verify(text, expected string) (*VerifyResult, error) {
	if expected == "" {
		return nil, fmt.Errorf("%w: expected hash is required", codec.ErrInvalidConfiguration)
	}

	sum, err := s.md5Processor.Digest([]byte(text), crypto.DigestOptions{Iterations: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to hash: %w", err)
	}

	generated := hex.EncodeToString(sum)
	return &VerifyResult{
		Match:     s.md5Processor.Verify(generated, expected),
		Generated: generated,
		Provided:  expected,
	}, nil
}

func digestOptions(req MD5Request) crypto.DigestOptions {
	return crypto.DigestOptions{Salt: []byte(req.Salt), Iterations: req.Iterations}
}

func renderDigest(sum []byte, format string) (string, error) {
	switch format {
	case crypto.DigestFormatHex:
		return hex.EncodeToString(sum), nil
	case crypto.DigestFormatBase64:
		return base64.StdEncoding.EncodeToString(sum), nil
	case crypto.DigestFormatBinary:
		return latin1String(sum)
	default:
		return "", fmt.Errorf("%w: unsupported digest format %q", codec.ErrInvalidConfiguration, format)
	}
}

func digestInfo(req MD5Request) string {
	salt := req.Salt
	if salt == "" {
		salt = "None"
	}
	return fmt.Sprintf("Hash Format: %s\nSalt: %s\nIterations: %d", req.Format, salt, req.Iterations)
}

func formatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d Bytes", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	scaled := math.Round(float64(size)/float64(div)*100) / 100
	return strconv.FormatFloat(scaled, 'f', -1, 64) + " " + []string{"KB", "MB", "GB"}[exp]
}
