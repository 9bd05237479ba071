package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// logLevelEnv overrides the CLI log level, e.g. CTB_LOG_LEVEL=debug.
const logLevelEnv = config.EnvPrefix + "_LOG_LEVEL"

// setupLogger initializes the process logger. It writes to stderr so command output on stdout stays pipeable.
func setupLogger() (logger.Logger, error) {
	level := os.Getenv(logLevelEnv)
	if level == "" {
		level = config.LogLevelWarning
	}

	if err := logger.InitLogger(config.NewConsoleLoggerSettings(level)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readInput returns the positional arguments joined by spaces, or stdin when there are none.
// A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// printResult writes the output line and, with --verbose, the parameter summary.
func printResult(cmd *cobra.Command, result *app.Result) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, result.Output); err != nil {
		return err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose || result.Info == "" {
		return nil
	}
	_, err = fmt.Fprintf(out, "\n%s\n", result.Info)
	return err
}
