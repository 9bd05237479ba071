package app

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// AESRequest is the advanced AES form. Key and IV are free text, NUL-padded or truncated to size.
type AESRequest struct {
	Text    string `validate:"required"`
	Key     string `validate:"required"`
	IV      string
	KeySize int    `validate:"aeskeysize"`
	Mode    string `validate:"oneof=CBC ECB CFB OFB CTR"`
	Padding string `validate:"oneof=Pkcs7 AnsiX923 Iso10126 Iso97971 ZeroPadding NoPadding"`
	Format  string `validate:"codecformat=base64 hex text"`
}

// WithDefaults fills unset fields with the form defaults: 256 bit key, CBC, Pkcs7, Base64.
func (r AESRequest) WithDefaults() AESRequest {
	if r.KeySize == 0 {
		r.KeySize = int(codec.KeySize256)
	}
	if r.Mode == "" {
		r.Mode = crypto.ModeCBC
	}
	if r.Padding == "" {
		r.Padding = crypto.PaddingPkcs7
	}
	if r.Format == "" {
		r.Format = string(codec.FormatBase64)
	}
	return r
}

// Validate for validating AESRequest struct
func (r AESRequest) Validate() error {
	return validateRequest(r)
}

// Base64Request is the advanced Base64 form.
// InputFormat applies to the text being encoded; OutputFormat renders the result.
type Base64Request struct {
	Text         string `validate:"required"`
	Variant      string `validate:"oneof=standard urlsafe mime"`
	LineBreaks   int    `validate:"gte=0"`
	InputFormat  string `validate:"codecformat=text hex binary"`
	OutputFormat string `validate:"required,codecformat"`
}

// WithDefaults fills unset fields: standard variant, text input, base64 output when encoding.
func (r Base64Request) WithDefaults(encoding bool) Base64Request {
	if r.Variant == "" {
		r.Variant = crypto.Base64Standard
	}
	if r.InputFormat == "" {
		r.InputFormat = string(codec.FormatText)
	}
	if r.OutputFormat == "" {
		if encoding {
			r.OutputFormat = string(codec.FormatBase64)
		} else {
			r.OutputFormat = string(codec.FormatText)
		}
	}
	return r
}

// Validate for validating Base64Request struct
func (r Base64Request) Validate() error {
	return validateRequest(r)
}

// MD5Request is the advanced MD5 form.
type MD5Request struct {
	Text       string
	Encoding   string `validate:"oneof=UTF-8 ASCII ISO-8859-1"`
	Salt       string
	Iterations int    `validate:"gte=1"`
	Format     string `validate:"oneof=hex base64 binary"`
}

// WithDefaults fills unset fields: UTF-8, one iteration, hex output.
func (r MD5Request) WithDefaults() MD5Request {
	if r.Encoding == "" {
		r.Encoding = crypto.TextEncodingUTF8
	}
	if r.Iterations == 0 {
		r.Iterations = 1
	}
	if r.Format == "" {
		r.Format = crypto.DigestFormatHex
	}
	return r
}

// Validate for validating MD5Request struct
func (r MD5Request) Validate() error {
	return validateRequest(r)
}

func validateRequest(s interface{}) error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
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
