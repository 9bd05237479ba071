// Package main is the entry point for the crypto-toolbox-cli application.
// It initializes the root command and registers the AES, Base64 and MD5 sub-commands,
// then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/crypto-toolbox/cmd/crypto-toolbox-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "crypto-toolbox-cli",
		Short: "Text oriented cryptographic utilities",
		Long: `crypto-toolbox-cli encrypts and decrypts text with AES, encodes and decodes Base64
and computes or verifies MD5 digests.

Text is taken from the positional arguments or, when there are none, from stdin.
Results are written to stdout and diagnostics to stderr.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAESCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize AES commands: %w", err)
	}

	if err := commands.InitBase64Commands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize Base64 commands: %w", err)
	}

	if err := commands.InitMD5Commands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize MD5 commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
