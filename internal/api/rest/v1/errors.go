package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

var errValidation = errors.New("validation failed")

// statusFor maps service errors onto HTTP status codes and a metrics error type.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, codec.ErrInvalidFormat):
		return http.StatusBadRequest, "invalid_format"
	case errors.Is(err, codec.ErrInvalidConfiguration):
		return http.StatusBadRequest, "invalid_configuration"
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return http.StatusUnprocessableEntity, "decryption_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// abortWithError writes an ErrorResponse for err and records it.
func abortWithError(ctx *gin.Context, operation, algorithm string, err error) {
	status, errorType := statusFor(err)
	metrics.RecordError(operation, algorithm, errorType)
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: err.Error()})
}

func bindJSON(ctx *gin.Context, operation, algorithm string, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		metrics.RecordError(operation, algorithm, "bad_request")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body: " + err.Error()})
		return false
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, operation, algorithm, err)
		return false
	}
	return true
}
