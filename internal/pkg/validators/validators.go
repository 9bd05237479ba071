// Package validators registers the toolbox's custom validation tags on go-playground/validator.
package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Custom tag names
const (
	TagAESKeySize  = "aeskeysize"
	TagCodecFormat = "codecformat"
)

// New returns a validator with all custom tags registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation(TagAESKeySize, KeySizeValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", TagAESKeySize, err)
	}
	if err := validate.RegisterValidation(TagCodecFormat, FormatValidation); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", TagCodecFormat, err)
	}

	return validate, nil
}
