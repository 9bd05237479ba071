package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// Format names a textual representation of a byte buffer.
type Format string

const (
	// FormatText is UTF-8 text. Encoding bytes that are not valid UTF-8 is lossy.
	FormatText Format = "text"
	// FormatHex is lowercase hexadecimal, two digits per byte.
	FormatHex Format = "hex"
	// FormatBinary is a bit-string, eight '0'/'1' characters per byte.
	FormatBinary Format = "binary"
	// FormatBase64 is standard padded Base64 (RFC 4648 section 4).
	FormatBase64 Format = "base64"
)

// ParseFormat maps a user supplied format name onto a Format. Matching is case-insensitive
// and accepts "utf8"/"utf-8" as aliases for text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "utf8", "utf-8":
		return FormatText, nil
	case "hex":
		return FormatHex, nil
	case "binary":
		return FormatBinary, nil
	case "base64":
		return FormatBase64, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidConfiguration, name)
	}
}

// Decode converts text in the given format into bytes.
func Decode(text string, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(text), nil
	case FormatHex:
		return decodeHex(text)
	case FormatBinary:
		return decodeBinary(text)
	case FormatBase64:
		buf, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, newFormatError(FormatBase64, text, err.Error())
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidConfiguration, format)
	}
}

// Encode renders bytes in the given format. It is the inverse of Decode for hex, binary and
// base64. FormatText replaces invalid UTF-8 sequences with U+FFFD, so that path does not
// round-trip arbitrary bytes.
func Encode(buf []byte, format Format) (string, error) {
	switch format {
	case FormatText:
		return strings.ToValidUTF8(string(buf), "\uFFFD"), nil
	case FormatHex:
		return hex.EncodeToString(buf), nil
	case FormatBinary:
		var sb strings.Builder
		sb.Grow(len(buf) * 8)
		for _, b := range buf {
			fmt.Fprintf(&sb, "%08b", b)
		}
		return sb.String(), nil
	case FormatBase64:
		return base64.StdEncoding.EncodeToString(buf), nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidConfiguration, format)
	}
}

func decodeHex(text string) ([]byte, error) {
	digits := stripWhitespace(text)
	for _, r := range digits {
		if !isHexDigit(r) {
			return nil, newFormatError(FormatHex, text, fmt.Sprintf("unexpected character %q", r))
		}
	}
	if len(digits)%2 != 0 {
		return nil, newFormatError(FormatHex, text, "odd number of hex digits")
	}

	buf, err := hex.DecodeString(digits)
	if err != nil {
		return nil, newFormatError(FormatHex, text, err.Error())
	}
	return buf, nil
}

func decodeBinary(text string) ([]byte, error) {
	bits := stripWhitespace(text)
	for _, r := range bits {
		if r != '0' && r != '1' {
			return nil, newFormatError(FormatBinary, text, fmt.Sprintf("unexpected character %q", r))
		}
	}
	if len(bits)%8 != 0 {
		return nil, newFormatError(FormatBinary, text, "length must be a multiple of 8")
	}

	buf := make([]byte, len(bits)/8)
	for i := range buf {
		var b byte
		for _, bit := range bits[i*8 : i*8+8] {
			b = b<<1 | byte(bit-'0')
		}
		buf[i] = b
	}
	return buf, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func stripWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
