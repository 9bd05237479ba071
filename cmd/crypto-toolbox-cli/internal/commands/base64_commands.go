package commands

import (
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Base64CommandHandler encapsulates logic for handling Base64 operations via CLI.
type Base64CommandHandler struct {
	base64Service app.Base64Service
	logger        logger.Logger
}

// NewBase64CommandHandler initializes and returns a Base64CommandHandler instance
func NewBase64CommandHandler() (*Base64CommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return newBase64CommandHandler(loggerInstance)
}

func newBase64CommandHandler(log logger.Logger) (*Base64CommandHandler, error) {
	base64Processor, err := cryptography.NewBase64Processor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Base64 processor: %w", err)
	}

	base64Service, err := app.NewBase64Service(base64Processor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Base64 service: %w", err)
	}

	return &Base64CommandHandler{
		base64Service: base64Service,
		logger:        log,
	}, nil
}

// EncodeCmd Base64 encodes text given as arguments or on stdin
func (commandHandler *Base64CommandHandler) EncodeCmd(cmd *cobra.Command, args []string) error {
	return commandHandler.run(cmd, args, commandHandler.base64Service.EncodeBasic, commandHandler.base64Service.Encode)
}

// DecodeCmd decodes Base64 text given as arguments or on stdin
func (commandHandler *Base64CommandHandler) DecodeCmd(cmd *cobra.Command, args []string) error {
	return commandHandler.run(cmd, args, commandHandler.base64Service.DecodeBasic, commandHandler.base64Service.Decode)
}

func (commandHandler *Base64CommandHandler) run(cmd *cobra.Command, args []string,
	basic func(text string) (*app.Result, error),
	advanced func(req app.Base64Request) (*app.Result, error)) error {

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	isAdvanced, err := cmd.Flags().GetBool("advanced")
	if err != nil {
		return fmt.Errorf("invalid advanced flag: %w", err)
	}

	var result *app.Result
	if !isAdvanced {
		result, err = basic(text)
	} else {
		req, flagErr := base64RequestFromFlags(cmd, text)
		if flagErr != nil {
			return flagErr
		}
		result, err = advanced(req)
	}
	if err != nil {
		return err
	}

	return printResult(cmd, result)
}

func base64RequestFromFlags(cmd *cobra.Command, text string) (app.Base64Request, error) {
	req := app.Base64Request{Text: text}

	var err error
	if req.Variant, err = cmd.Flags().GetString("variant"); err != nil {
		return req, fmt.Errorf("invalid variant flag: %w", err)
	}
	if req.LineBreaks, err = cmd.Flags().GetInt("line-breaks"); err != nil {
		return req, fmt.Errorf("invalid line-breaks flag: %w", err)
	}
	if req.InputFormat, err = cmd.Flags().GetString("input-format"); err != nil {
		return req, fmt.Errorf("invalid input-format flag: %w", err)
	}
	if req.OutputFormat, err = cmd.Flags().GetString("output-format"); err != nil {
		return req, fmt.Errorf("invalid output-format flag: %w", err)
	}
	return req, nil
}

// InitBase64Commands registers Base64-related commands
func InitBase64Commands(rootCmd *cobra.Command) error {
	handler, err := NewBase64CommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create Base64 command handler: %w", err)
	}

	registerBase64Commands(rootCmd, handler)
	return nil
}

func registerBase64Commands(rootCmd *cobra.Command, handler *Base64CommandHandler) {
	base64Cmd := &cobra.Command{
		Use:   "base64",
		Short: "Base64 encoding and decoding",
	}

	addFlags := func(c *cobra.Command) {
		c.Flags().Bool("advanced", false, "Use variant, line breaks and formats")
		c.Flags().String("variant", "", "standard, urlsafe or mime (advanced)")
		c.Flags().Int("line-breaks", 0, "Wrap output every n characters, 0 disables (advanced)")
		c.Flags().String("input-format", "", "Format of the data being encoded: text, hex or binary (advanced)")
		c.Flags().String("output-format", "", "Format of the result: text, hex, binary or base64 (advanced)")
		c.Flags().BoolP("verbose", "v", false, "Print the parameter summary")
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Base64 encode text",
		RunE:  handler.EncodeCmd,
	}
	addFlags(encodeCmd)
	base64Cmd.AddCommand(encodeCmd)

	decodeCmd := &cobra.Command{
		Use:   "decode [base64]",
		Short: "Decode Base64 text",
		RunE:  handler.DecodeCmd,
	}
	addFlags(decodeCmd)
	base64Cmd.AddCommand(decodeCmd)

	rootCmd.AddCommand(base64Cmd)
}
