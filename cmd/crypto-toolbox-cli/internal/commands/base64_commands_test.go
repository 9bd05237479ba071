//go:build unit
// +build unit

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64Commands(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"EncodeArgs", "", []string{"base64", "encode", "Hello,", "World!"}, "SGVsbG8sIFdvcmxkIQ=="},
		{"EncodeStdin", "Hello\n", []string{"base64", "encode"}, "SGVsbG8="},
		{"Decode", "", []string{"base64", "decode", "SGVsbG8="}, "Hello"},
		{"DecodeUnpadded", "", []string{"base64", "decode", "SGVsbG8"}, "Hello"},
		{"EncodeHexURLSafe", "", []string{"base64", "encode", "--advanced", "--input-format", "hex", "--variant", "urlsafe", "fbff"}, "-_8="},
		{"DecodeToHex", "-_8=\n", []string{"base64", "decode", "--advanced", "--output-format", "hex"}, "fbff"},
		{"DecodeDashLeadingArg", "", []string{"base64", "decode", "--advanced", "--output-format", "hex", "--", "-_8="}, "fbff"},
		{"EncodeHexOutput", "", []string{"base64", "encode", "--advanced", "--output-format", "hex", "Hello"}, "534756736247383d"},
		{"RoundTripInput", "", []string{"base64", "decode", "SGVsbG8sIFdvcmxkIQ=="}, "Hello, World!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, firstLine(out))
		})
	}
}

func TestBase64Commands_Malformed(t *testing.T) {
	_, err := executeCommand(t, "", "base64", "decode", "SGVsbG8*")
	assert.Error(t, err)
}
