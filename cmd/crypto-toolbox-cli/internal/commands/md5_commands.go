package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MD5CommandHandler encapsulates logic for handling MD5 operations via CLI.
type MD5CommandHandler struct {
	md5Service app.MD5Service
	logger     logger.Logger
}

// NewMD5CommandHandler initializes and returns an MD5CommandHandler instance
func NewMD5CommandHandler() (*MD5CommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return newMD5CommandHandler(loggerInstance)
}

func newMD5CommandHandler(log logger.Logger) (*MD5CommandHandler, error) {
	md5Processor, err := cryptography.NewMD5Processor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create MD5 processor: %w", err)
	}

	md5Service, err := app.NewMD5Service(md5Processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create MD5 service: %w", err)
	}

	return &MD5CommandHandler{
		md5Service: md5Service,
		logger:     log,
	}, nil
}

// HashCmd hashes text, or a file with --file. Any of --salt, --iterations, --encoding or --format
// switches text hashing to the advanced form.
func (commandHandler *MD5CommandHandler) HashCmd(cmd *cobra.Command, args []string) error {
	req, err := md5RequestFromFlags(cmd)
	if err != nil {
		return err
	}

	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("invalid file flag: %w", err)
	}
	if filePath != "" {
		result, err := commandHandler.hashFile(filePath, req)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	}

	req.Text, err = readInput(cmd, args)
	if err != nil {
		return err
	}

	var result *app.Result
	if isAdvancedDigest(cmd) {
		result, err = commandHandler.md5Service.HashAdvanced(req)
	} else {
		result, err = commandHandler.md5Service.Hash(req.Text)
	}
	if err != nil {
		return err
	}

	return printResult(cmd, result)
}

func (commandHandler *MD5CommandHandler) hashFile(path string, req app.MD5Request) (*app.Result, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return commandHandler.md5Service.HashFile(file, filepath.Base(path), info.Size(), req)
}

// VerifyCmd hashes text and compares it with --expected. A mismatch is reported as an error.
func (commandHandler *MD5CommandHandler) VerifyCmd(cmd *cobra.Command, args []string) error {
	expected, err := cmd.Flags().GetString("expected")
	if err != nil {
		return fmt.Errorf("invalid expected flag: %w", err)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := commandHandler.md5Service.Verify(text, expected)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Match {
		_, _ = fmt.Fprintf(out, "Hash mismatch\nGenerated: %s\nProvided:  %s\n", result.Generated, result.Provided)
		return fmt.Errorf("hash does not match")
	}

	_, err = fmt.Fprintf(out, "Hash matches\nGenerated: %s\n", result.Generated)
	return err
}

func md5RequestFromFlags(cmd *cobra.Command) (app.MD5Request, error) {
	var (
		req app.MD5Request
		err error
	)
	if req.Salt, err = cmd.Flags().GetString("salt"); err != nil {
		return req, fmt.Errorf("invalid salt flag: %w", err)
	}
	if req.Iterations, err = cmd.Flags().GetInt("iterations"); err != nil {
		return req, fmt.Errorf("invalid iterations flag: %w", err)
	}
	if req.Encoding, err = cmd.Flags().GetString("encoding"); err != nil {
		return req, fmt.Errorf("invalid encoding flag: %w", err)
	}
	if req.Format, err = cmd.Flags().GetString("format"); err != nil {
		return req, fmt.Errorf("invalid format flag: %w", err)
	}
	return req, nil
}

func isAdvancedDigest(cmd *cobra.Command) bool {
	for _, name := range []string{"salt", "iterations", "encoding", "format"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// InitMD5Commands registers MD5-related commands
func InitMD5Commands(rootCmd *cobra.Command) error {
	handler, err := NewMD5CommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create MD5 command handler: %w", err)
	}

	registerMD5Commands(rootCmd, handler)
	return nil
}

func registerMD5Commands(rootCmd *cobra.Command, handler *MD5CommandHandler) {
	md5Cmd := &cobra.Command{
		Use:   "md5",
		Short: "MD5 hashing and verification",
	}

	hashCmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "MD5 hash text or a file",
		RunE:  handler.HashCmd,
	}
	hashCmd.Flags().String("file", "", "Hash this file instead of text")
	hashCmd.Flags().String("salt", "", "Salt prepended to the input")
	hashCmd.Flags().Int("iterations", 1, "Number of digest iterations")
	hashCmd.Flags().String("encoding", "", "Text encoding: UTF-8, ASCII or ISO-8859-1")
	hashCmd.Flags().String("format", "", "Digest format: hex, base64 or binary")
	hashCmd.Flags().BoolP("verbose", "v", false, "Print the parameter summary")
	md5Cmd.AddCommand(hashCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify [text]",
		Short: "Verify text against an expected MD5 hash",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("expected", "e", "", "Expected hex digest")
	_ = verifyCmd.MarkFlagRequired("expected")
	md5Cmd.AddCommand(verifyCmd)

	rootCmd.AddCommand(md5Cmd)
}
