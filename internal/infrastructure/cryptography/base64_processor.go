package cryptography

import (
	"encoding/base64"
	"fmt"
	"strings"

	cryptoDomain "github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
)

// base64Processor struct that implements the Base64Processor interface
type base64Processor struct {
	logger logger.Logger
}

// NewBase64Processor creates and returns a new instance of base64Processor
func NewBase64Processor(logger logger.Logger) (cryptoDomain.Base64Processor, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return &base64Processor{
		logger: logger,
	}, nil
}

// Encode renders data in the requested variant and wraps it when asked to.
func (b *base64Processor) Encode(data []byte, opts cryptoDomain.Base64Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var encoded string
	switch opts.Variant {
	case cryptoDomain.Base64URLSafe:
		encoded = base64.URLEncoding.EncodeToString(data)
	default:
		encoded = base64.StdEncoding.EncodeToString(data)
	}

	every := opts.LineBreaks
	if every == 0 && opts.Variant == cryptoDomain.Base64MIME {
		every = cryptoDomain.MIMELineLength
	}
	if every == 0 {
		return encoded, nil
	}
	return codec.ApplyLineBreaks(encoded, every)
}

// Decode accepts any of the variants, with or without line breaks and trailing padding.
func (b *base64Processor) Decode(encoded string, opts cryptoDomain.Base64Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	normalized := strings.TrimSpace(codec.StripLineBreaks(encoded))
	normalized = strings.NewReplacer("-", "+", "_", "/").Replace(normalized)
	if rem := len(normalized) % 4; rem != 0 {
		normalized += strings.Repeat("=", 4-rem)
	}

	decoded, err := codec.Decode(normalized, codec.FormatBase64)
	if err != nil {
		b.logger.Debug("Base64 decode rejected: ", err)
		return nil, err
	}
	return decoded, nil
}
