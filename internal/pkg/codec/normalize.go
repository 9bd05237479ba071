package codec

import (
	"crypto/rand"
	"fmt"
	"io"
)

// KeySize is an AES key size in bits.
type KeySize int

// Supported AES key sizes in bits.
const (
	KeySize128 KeySize = 128
	KeySize192 KeySize = 192
	KeySize256 KeySize = 256
)

// IVSize is the AES block size in bytes. Normalized IVs are always this long.
const IVSize = 16

// RandomIVLength is the number of characters GenerateRandomIV produces.
const RandomIVLength = 16

const ivAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Bytes returns the key length in bytes.
func (k KeySize) Bytes() int {
	return int(k) / 8
}

// Validate reports whether k is one of 128, 192 or 256.
func (k KeySize) Validate() error {
	switch k {
	case KeySize128, KeySize192, KeySize256:
		return nil
	default:
		return fmt.Errorf("%w: unsupported AES key size %d bits", ErrInvalidConfiguration, int(k))
	}
}

// NormalizeKey encodes secret as UTF-8 and pads it with trailing NUL bytes, or truncates it,
// to exactly keySize/8 bytes. An empty secret yields an all-NUL key, which callers should treat
// as insecure.
func NormalizeKey(secret string, keySize KeySize) ([]byte, error) {
	if err := keySize.Validate(); err != nil {
		return nil, err
	}
	return fitLength([]byte(secret), keySize.Bytes()), nil
}

// NormalizeIV applies the same pad or truncate rule as NormalizeKey with a fixed length of 16 bytes.
func NormalizeIV(iv string) []byte {
	return fitLength([]byte(iv), IVSize)
}

// GenerateRandomIV returns 16 characters drawn uniformly from [A-Za-z0-9] using crypto/rand.
// The result is meant to be fed through NormalizeIV, so it carries about 95 bits of entropy
// rather than a full 128.
func GenerateRandomIV() (string, error) {
	return GenerateRandomIVFrom(rand.Reader)
}

// GenerateRandomIVFrom is GenerateRandomIV with an explicit entropy source. Each character
// consumes one byte masked to six bits; values outside the alphabet are rejected so every
// character stays uniformly distributed.
func GenerateRandomIVFrom(r io.Reader) (string, error) {
	out := make([]byte, 0, RandomIVLength)
	var buf [RandomIVLength]byte
	for len(out) < RandomIVLength {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return "", fmt.Errorf("failed to generate random IV: %w", err)
		}
		for _, b := range buf {
			idx := int(b & 0x3f)
			if idx >= len(ivAlphabet) {
				continue
			}
			out = append(out, ivAlphabet[idx])
			if len(out) == RandomIVLength {
				break
			}
		}
	}
	return string(out), nil
}

func fitLength(src []byte, size int) []byte {
	out := make([]byte, size)
	copy(out, src)
	return out
}
