package v1

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// ResultResponse carries the output of a form operation and its parameter summary
type ResultResponse struct {
	Output string `json:"output"`
	Info   string `json:"info,omitempty"`
}

// IVResponse carries a freshly generated IV
type IVResponse struct {
	IV string `json:"iv"`
}

// VerifyResponse reports whether a digest matched
type VerifyResponse struct {
	Match     bool   `json:"match"`
	Generated string `json:"generated"`
	Provided  string `json:"provided"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status"`
}

// AESRequest is the body of POST /aes/encrypt and POST /aes/decrypt.
// Without Advanced only Text and Key are used and Key acts as a passphrase.
type AESRequest struct {
	Text     string `json:"text" validate:"required"`
	Key      string `json:"key" validate:"required"`
	Advanced bool   `json:"advanced"`
	IV       string `json:"iv,omitempty"`
	KeySize  int    `json:"key_size,omitempty" validate:"omitempty,oneof=128 192 256"`
	Mode     string `json:"mode,omitempty" validate:"omitempty,oneof=CBC ECB CFB OFB CTR"`
	Padding  string `json:"padding,omitempty" validate:"omitempty,oneof=Pkcs7 AnsiX923 Iso10126 Iso97971 ZeroPadding NoPadding"`
	Format   string `json:"format,omitempty"`
}

// Validate for validating AESRequest struct
func (r *AESRequest) Validate() error {
	return validateDTO(r)
}

// Base64Request is the body of POST /base64/encode and POST /base64/decode
type Base64Request struct {
	Text         string `json:"text" validate:"required"`
	Advanced     bool   `json:"advanced"`
	Variant      string `json:"variant,omitempty" validate:"omitempty,oneof=standard urlsafe mime"`
	LineBreaks   int    `json:"line_breaks,omitempty" validate:"gte=0"`
	InputFormat  string `json:"input_format,omitempty"`
	OutputFormat string `json:"output_format,omitempty"`
}

// Validate for validating Base64Request struct
func (r *Base64Request) Validate() error {
	return validateDTO(r)
}

// MD5HashRequest is the body of POST /md5/hash
type MD5HashRequest struct {
	Text       string `json:"text"`
	Advanced   bool   `json:"advanced"`
	Encoding   string `json:"encoding,omitempty" validate:"omitempty,oneof=UTF-8 ASCII ISO-8859-1"`
	Salt       string `json:"salt,omitempty"`
	Iterations int    `json:"iterations,omitempty" validate:"gte=0"`
	Format     string `json:"format,omitempty" validate:"omitempty,oneof=hex base64 binary"`
}

// Validate for validating MD5HashRequest struct
func (r *MD5HashRequest) Validate() error {
	return validateDTO(r)
}

// MD5VerifyRequest is the body of POST /md5/verify
type MD5VerifyRequest struct {
	Text     string `json:"text"`
	Expected string `json:"expected" validate:"required"`
}

// Validate for validating MD5VerifyRequest struct
func (r *MD5VerifyRequest) Validate() error {
	return validateDTO(r)
}

func validateDTO(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", errValidation, messages)
		}
		return fmt.Errorf("%w: %v", errValidation, err)
	}
	return nil
}
