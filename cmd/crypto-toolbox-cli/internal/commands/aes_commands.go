package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AESCommandHandler encapsulates logic for handling AES operations via CLI.
type AESCommandHandler struct {
	aesProcessor crypto.AESProcessor
	aesService   app.AESService
	logger       logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger, AES processor and AES service.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return newAESCommandHandler(loggerInstance)
}

func newAESCommandHandler(log logger.Logger) (*AESCommandHandler, error) {
	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	aesService, err := app.NewAESService(aesProcessor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	return &AESCommandHandler{
		aesProcessor: aesProcessor,
		aesService:   aesService,
		logger:       log,
	}, nil
}

// EncryptCmd encrypts text given as arguments or on stdin
func (commandHandler *AESCommandHandler) EncryptCmd(cmd *cobra.Command, args []string) error {
	return commandHandler.run(cmd, args, commandHandler.aesService.EncryptBasic, commandHandler.aesService.Encrypt)
}

// DecryptCmd decrypts text given as arguments or on stdin
func (commandHandler *AESCommandHandler) DecryptCmd(cmd *cobra.Command, args []string) error {
	return commandHandler.run(cmd, args, commandHandler.aesService.DecryptBasic, commandHandler.aesService.Decrypt)
}

func (commandHandler *AESCommandHandler) run(cmd *cobra.Command, args []string,
	basic func(text, passphrase string) (*app.Result, error),
	advanced func(req app.AESRequest) (*app.Result, error)) error {

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return fmt.Errorf("invalid key flag: %w", err)
	}

	isAdvanced, err := cmd.Flags().GetBool("advanced")
	if err != nil {
		return fmt.Errorf("invalid advanced flag: %w", err)
	}

	var result *app.Result
	if !isAdvanced {
		result, err = basic(text, key)
	} else {
		req, flagErr := aesRequestFromFlags(cmd, text, key)
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

func aesRequestFromFlags(cmd *cobra.Command, text, key string) (app.AESRequest, error) {
	req := app.AESRequest{Text: text, Key: key}

	var err error
	if req.IV, err = cmd.Flags().GetString("iv"); err != nil {
		return req, fmt.Errorf("invalid iv flag: %w", err)
	}
	if req.KeySize, err = cmd.Flags().GetInt("key-size"); err != nil {
		return req, fmt.Errorf("invalid key-size flag: %w", err)
	}
	if req.Mode, err = cmd.Flags().GetString("mode"); err != nil {
		return req, fmt.Errorf("invalid mode flag: %w", err)
	}
	if req.Padding, err = cmd.Flags().GetString("padding"); err != nil {
		return req, fmt.Errorf("invalid padding flag: %w", err)
	}
	if req.Format, err = cmd.Flags().GetString("format"); err != nil {
		return req, fmt.Errorf("invalid format flag: %w", err)
	}
	return req, nil
}

// GenerateIVCmd prints a random 16 character IV
func (commandHandler *AESCommandHandler) GenerateIVCmd(cmd *cobra.Command, _ []string) error {
	iv, err := commandHandler.aesService.GenerateIV()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), iv)
	return err
}

// GenerateKeyCmd generates a random AES key and persists it in the selected directory
func (commandHandler *AESCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	bits, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keySize := codec.KeySize(bits)
	if err := keySize.Validate(); err != nil {
		return err
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	secretKey, err := commandHandler.aesProcessor.GenerateKey(keySize.Bytes())
	if err != nil {
		return err
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-symmetric-key.bin", uuid.New()))
	if err := os.WriteFile(keyFilePath, secretKey, 0600); err != nil {
		return fmt.Errorf("failed to write key: %w", err)
	}

	commandHandler.logger.Info("AES key saved to ", keyFilePath)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), keyFilePath)
	return err
}

// InitAESCommands registers AES-related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler: %w", err)
	}

	registerAESCommands(rootCmd, handler)
	return nil
}

func registerAESCommands(rootCmd *cobra.Command, handler *AESCommandHandler) {
	aesCmd := &cobra.Command{
		Use:   "aes",
		Short: "AES encryption, decryption and key material",
	}

	addCipherFlags := func(c *cobra.Command) {
		c.Flags().StringP("key", "k", "", "Passphrase, or the secret key with --advanced")
		c.Flags().Bool("advanced", false, "Use explicit key, IV, key size, mode and padding instead of a passphrase")
		c.Flags().String("iv", "", "Initialization vector (advanced, generated on encrypt when empty)")
		c.Flags().Int("key-size", 256, "Key size in bits: 128, 192 or 256 (advanced)")
		c.Flags().String("mode", crypto.ModeCBC, "Cipher mode: CBC, ECB, CFB, OFB or CTR (advanced)")
		c.Flags().String("padding", crypto.PaddingPkcs7,
			"Padding: Pkcs7, AnsiX923, Iso10126, Iso97971, ZeroPadding or NoPadding (advanced)")
		c.Flags().String("format", "Base64", "Ciphertext format: Base64, Hex or Text (advanced)")
		c.Flags().BoolP("verbose", "v", false, "Print the parameter summary")
		_ = c.MarkFlagRequired("key")
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text with AES",
		RunE:  handler.EncryptCmd,
	}
	addCipherFlags(encryptCmd)
	aesCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt text with AES",
		RunE:  handler.DecryptCmd,
	}
	addCipherFlags(decryptCmd)
	aesCmd.AddCommand(decryptCmd)

	generateIVCmd := &cobra.Command{
		Use:   "generate-iv",
		Short: "Generate a random 16 character IV",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateIVCmd,
	}
	aesCmd.AddCommand(generateIVCmd)

	generateKeyCmd := &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a random AES key file",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().Int("key-size", 256, "Key size in bits: 128, 192 or 256")
	generateKeyCmd.Flags().String("key-dir", ".", "Directory to store the key")
	aesCmd.AddCommand(generateKeyCmd)

	rootCmd.AddCommand(aesCmd)
}
