package crypto

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"

	"github.com/go-playground/validator/v10"
)

// CipherParams bundles everything an AES encrypt or decrypt call needs besides the data itself.
// It is passed by value and never mutated by processors.
type CipherParams struct {
	Key     []byte `validate:"required"`
	IV      []byte
	Mode    string `validate:"required,oneof=CBC ECB CFB OFB CTR"`
	Padding string `validate:"required,oneof=Pkcs7 AnsiX923 Iso10126 Iso97971 ZeroPadding NoPadding"`
}

// Validate for validating CipherParams struct
func (p CipherParams) Validate() error {
	if err := validateStruct(p); err != nil {
		return err
	}

	switch len(p.Key) {
	case AESKeySize128, AESKeySize192, AESKeySize256:
	default:
		return fmt.Errorf("%w: invalid AES key length %d bytes, expected 16, 24 or 32", codec.ErrInvalidConfiguration, len(p.Key))
	}

	if p.Mode != ModeECB && len(p.IV) != codec.IVSize {
		return fmt.Errorf("%w: invalid IV length %d bytes, expected %d", codec.ErrInvalidConfiguration, len(p.IV), codec.IVSize)
	}
	return nil
}

// DigestOptions controls salting and iteration of MD5 digests.
type DigestOptions struct {
	Salt       []byte
	Iterations int `validate:"gte=1"`
}

// Validate for validating DigestOptions struct
func (o DigestOptions) Validate() error {
	return validateStruct(o)
}

// Base64Options controls the Base64 alphabet and line wrapping.
// LineBreaks of 0 means no wrapping, except for the MIME variant which then wraps at MIMELineLength.
type Base64Options struct {
	Variant    string `validate:"omitempty,oneof=standard urlsafe mime"`
	LineBreaks int    `validate:"gte=0"`
}

// Validate for validating Base64Options struct
func (o Base64Options) Validate() error {
	return validateStruct(o)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: validation failed: %v", codec.ErrInvalidConfiguration, messages)
		}
		return fmt.Errorf("%w: validation error: %v", codec.ErrInvalidConfiguration, err)
	}

	return nil
}
