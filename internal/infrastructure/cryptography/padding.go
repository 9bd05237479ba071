package cryptography

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"

	cryptoDomain "github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
)

var errInvalidPadding = errors.New("invalid padding")

// pad appends padding for the given scheme so the result is a multiple of blockSize.
// ZeroPadding adds nothing to already aligned data and NoPadding never adds anything.
func pad(data []byte, scheme string, blockSize int) ([]byte, error) {
	n := blockSize - len(data)%blockSize

	out := make([]byte, len(data), len(data)+n)
	copy(out, data)

	switch scheme {
	case cryptoDomain.PaddingPkcs7:
		return append(out, bytes.Repeat([]byte{byte(n)}, n)...), nil
	case cryptoDomain.PaddingAnsiX923:
		out = append(out, make([]byte, n-1)...)
		return append(out, byte(n)), nil
	case cryptoDomain.PaddingIso10126:
		filler := make([]byte, n-1)
		if _, err := rand.Read(filler); err != nil {
			return nil, fmt.Errorf("failed to generate padding: %w", err)
		}
		out = append(out, filler...)
		return append(out, byte(n)), nil
	case cryptoDomain.PaddingIso97971:
		out = append(out, 0x80)
		return append(out, make([]byte, n-1)...), nil
	case cryptoDomain.PaddingZeroPadding:
		if n == blockSize {
			return out, nil
		}
		return append(out, make([]byte, n)...), nil
	case cryptoDomain.PaddingNoPadding:
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported padding %q", codec.ErrInvalidConfiguration, scheme)
	}
}

// unpad strips padding added by pad and rejects anything pad could not have produced.
func unpad(data []byte, scheme string, blockSize int) ([]byte, error) {
	switch scheme {
	case cryptoDomain.PaddingPkcs7:
		n, err := trailingCount(data, blockSize)
		if err != nil {
			return nil, err
		}
		for _, b := range data[len(data)-n:] {
			if int(b) != n {
				return nil, errInvalidPadding
			}
		}
		return data[:len(data)-n], nil
	case cryptoDomain.PaddingAnsiX923:
		n, err := trailingCount(data, blockSize)
		if err != nil {
			return nil, err
		}
		for _, b := range data[len(data)-n : len(data)-1] {
			if b != 0 {
				return nil, errInvalidPadding
			}
		}
		return data[:len(data)-n], nil
	case cryptoDomain.PaddingIso10126:
		n, err := trailingCount(data, blockSize)
		if err != nil {
			return nil, err
		}
		return data[:len(data)-n], nil
	case cryptoDomain.PaddingIso97971:
		trimmed := bytes.TrimRight(data, "\x00")
		if len(trimmed) == 0 || trimmed[len(trimmed)-1] != 0x80 || len(data)-len(trimmed) >= blockSize {
			return nil, errInvalidPadding
		}
		return trimmed[:len(trimmed)-1], nil
	case cryptoDomain.PaddingZeroPadding:
		return bytes.TrimRight(data, "\x00"), nil
	case cryptoDomain.PaddingNoPadding:
		return data, nil
	default:
		return nil, fmt.Errorf("%w: unsupported padding %q", codec.ErrInvalidConfiguration, scheme)
	}
}

// trailingCount reads the pad length stored in the last byte.
func trailingCount(data []byte, blockSize int) (int, error) {
	if len(data) == 0 {
		return 0, errInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return 0, errInvalidPadding
	}
	return n, nil
}
