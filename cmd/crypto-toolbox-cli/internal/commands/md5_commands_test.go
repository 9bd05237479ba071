//go:build unit
// +build unit

package commands

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5Commands_Hash(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"Text", "", []string{"md5", "hash", "Hello"}, "8b1a9953c4611296a827abf8c47804d7"},
		{"Stdin", "Hello\n", []string{"md5", "hash"}, "8b1a9953c4611296a827abf8c47804d7"},
		{"Empty", "", []string{"md5", "hash"}, "d41d8cd98f00b204e9800998ecf8427e"},
		{"Base64", "", []string{"md5", "hash", "--format", "base64", "Hello"}, "ixqZU8RhEpaoJ6v4xHgE1w=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, firstLine(out))
		})
	}
}

func TestMD5Commands_HashFile(t *testing.T) {
	path := testutil.CreateTestFile(t, "hello.txt", []byte("Hello"))

	out, err := executeCommand(t, "", "md5", "hash", "--file", path, "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "8b1a9953c4611296a827abf8c47804d7", firstLine(out))
	assert.Contains(t, out, "File: hello.txt")
	assert.Contains(t, out, "Size: 5 Bytes")

	_, err = executeCommand(t, "", "md5", "hash", "--file", path+".missing")
	assert.Error(t, err)
}

func TestMD5Commands_Verify(t *testing.T) {
	out, err := executeCommand(t, "", "md5", "verify", "--expected", "8B1A9953C4611296A827ABF8C47804D7", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hash matches", firstLine(out))

	out, err = executeCommand(t, "", "md5", "verify", "--expected", "d41d8cd98f00b204e9800998ecf8427e", "Hello")
	assert.Error(t, err)
	assert.Equal(t, "Hash mismatch", firstLine(out))
}
