package app

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"

	"golang.org/x/text/encoding/charmap"
)

// encodeText converts text to bytes in the named character encoding.
// ASCII silently drops non-ASCII characters; ISO-8859-1 rejects characters it cannot represent.
func encodeText(text, encoding string) ([]byte, error) {
	switch encoding {
	case "", crypto.TextEncodingUTF8:
		return []byte(text), nil
	case crypto.TextEncodingASCII:
		return []byte(strings.Map(func(r rune) rune {
			if r > 0x7f {
				return -1
			}
			return r
		}, text)), nil
	case crypto.TextEncodingLatin1:
		encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, &codec.FormatError{Format: codec.FormatText, Input: text, Reason: "not representable in ISO-8859-1"}
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf("%w: unsupported text encoding %q", codec.ErrInvalidConfiguration, encoding)
	}
}

// latin1String renders each byte as the ISO-8859-1 character of the same value.
func latin1String(b []byte) (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to render bytes as ISO-8859-1: %w", err)
	}
	return string(decoded), nil
}
