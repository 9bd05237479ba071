package codec

import (
	"fmt"
	"strings"
)

// LineSeparator is inserted by ApplyLineBreaks.
const LineSeparator = "\n"

// ApplyLineBreaks inserts LineSeparator after every `every` characters of text.
// No separator is appended after the final line.
func ApplyLineBreaks(text string, every int) (string, error) {
	if every <= 0 {
		return "", fmt.Errorf("%w: line break interval must be positive, got %d", ErrInvalidConfiguration, every)
	}

	runes := []rune(text)
	if len(runes) <= every {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(runes)/every)
	for start := 0; start < len(runes); start += every {
		if start > 0 {
			sb.WriteString(LineSeparator)
		}
		end := min(start+every, len(runes))
		sb.WriteString(string(runes[start:end]))
	}
	return sb.String(), nil
}

// StripLineBreaks removes every carriage return and line feed from text.
func StripLineBreaks(text string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(text)
}
