package validators

import (
	"strings"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"

	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates an AES key size given in bits (128, 192 or 256).
func KeySizeValidation(fl validator.FieldLevel) bool {
	return codec.KeySize(fl.Field().Int()).Validate() == nil
}

// FormatValidation validates an encoding format name accepted by codec.ParseFormat.
// The allowed subset can be narrowed with a space separated param, e.g. `codecformat=hex base64`.
func FormatValidation(fl validator.FieldLevel) bool {
	format, err := codec.ParseFormat(fl.Field().String())
	if err != nil {
		return false
	}

	allowed := fl.Param()
	if allowed == "" {
		return true
	}
	for _, name := range strings.Fields(allowed) {
		if candidate, err := codec.ParseFormat(name); err == nil && candidate == format {
			return true
		}
	}
	return false
}
