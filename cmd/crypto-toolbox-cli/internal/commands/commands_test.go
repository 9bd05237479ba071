//go:build unit
// +build unit

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the CLI with args and optional stdin and returns stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	rootCmd := &cobra.Command{Use: "crypto-toolbox-cli", SilenceUsage: true, SilenceErrors: true}

	aesHandler, err := newAESCommandHandler(log)
	require.NoError(t, err)
	registerAESCommands(rootCmd, aesHandler)

	base64Handler, err := newBase64CommandHandler(log)
	require.NoError(t, err)
	registerBase64Commands(rootCmd, base64Handler)

	md5Handler, err := newMD5CommandHandler(log)
	require.NoError(t, err)
	registerMD5Commands(rootCmd, md5Handler)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	return out.String(), err
}

func firstLine(s string) string {
	return strings.SplitN(s, "\n", 2)[0]
}
