package cryptography

import (
	"bytes"
	"crypto/md5" //nolint:gosec // MD5 is the digest this toolbox exposes
	"fmt"
	"io"
	"strings"

	cryptoDomain "github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// md5Processor struct that implements the MD5Processor interface
type md5Processor struct {
	logger logger.Logger
}

// NewMD5Processor creates and returns a new instance of md5Processor
func NewMD5Processor(logger logger.Logger) (cryptoDomain.MD5Processor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &md5Processor{
		logger: logger,
	}, nil
}

// Digest returns MD5(salt || data), iterated over the raw digest.
func (m *md5Processor) Digest(data []byte, opts cryptoDomain.DigestOptions) ([]byte, error) {
	return m.DigestReader(bytes.NewReader(data), opts)
}

// DigestReader streams r through MD5 so large files are never held in memory.
func (m *md5Processor) DigestReader(r io.Reader, opts cryptoDomain.DigestOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	h := md5.New() //nolint:gosec // see import
	h.Write(opts.Salt)
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, fmt.Errorf("failed to read digest input: %w", err)
	}
	sum := h.Sum(nil)

	for i := 1; i < opts.Iterations; i++ {
		next := md5.Sum(sum) //nolint:gosec // see import
		sum = next[:]
	}

	m.logger.Debug("MD5 digest over ", n, " bytes with ", opts.Iterations, " iteration(s)")
	return sum, nil
}

// Verify reports whether digestHex matches expected, ignoring case and surrounding whitespace.
func (m *md5Processor) Verify(digestHex, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(digestHex), strings.TrimSpace(expected))
}
