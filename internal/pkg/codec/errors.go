package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when input does not match the expected encoding format.
var ErrInvalidFormat = errors.New("invalid format")

// ErrInvalidConfiguration is returned for unsupported parameters such as an unknown key size,
// an unknown format name or a non-positive line break interval.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// maxQuotedInput bounds how much of the offending input is echoed back in error messages.
const maxQuotedInput = 32

// FormatError describes input that could not be decoded in the requested format.
type FormatError struct {
	Format Format
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s input %q: %s", e.Format, quoteInput(e.Input), e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidFormat) hold for every FormatError.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

func newFormatError(format Format, input, reason string) error {
	return &FormatError{Format: format, Input: input, Reason: reason}
}

func quoteInput(input string) string {
	runes := []rune(input)
	if len(runes) <= maxQuotedInput {
		return input
	}
	return string(runes[:maxQuotedInput]) + "..."
}
