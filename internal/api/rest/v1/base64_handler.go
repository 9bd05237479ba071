package v1

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const algorithmBase64 = "BASE64"

// Base64Handler defines the interface for handling Base64 operations
type Base64Handler interface {
	Encode(ctx *gin.Context)
	Decode(ctx *gin.Context)
}

// base64Handler struct holds the services
type base64Handler struct {
	base64Service app.Base64Service
}

// NewBase64Handler creates a new Base64Handler
func NewBase64Handler(base64Service app.Base64Service) Base64Handler {
	return &base64Handler{
		base64Service: base64Service,
	}
}

// Encode handles the POST request to Base64 encode text
// @Summary Base64 encode
// @Tags Base64
// @Accept json
// @Produce json
// @Param requestBody body Base64Request true "Base64 request"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /base64/encode [post]
func (handler *base64Handler) Encode(ctx *gin.Context) {
	var request Base64Request
	if !bindJSON(ctx, metrics.OpEncode, algorithmBase64, &request) {
		return
	}

	start := time.Now()
	var (
		result *app.Result
		err    error
	)
	if request.Advanced {
		result, err = handler.base64Service.Encode(toBase64Request(request))
	} else {
		result, err = handler.base64Service.EncodeBasic(request.Text)
	}
	observe(metrics.OpEncode, algorithmBase64, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpEncode, algorithmBase64, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultResponse{Output: result.Output, Info: result.Info})
}

// Decode handles the POST request to decode Base64 text
// @Summary Base64 decode
// @Tags Base64
// @Accept json
// @Produce json
// @Param requestBody body Base64Request true "Base64 request"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /base64/decode [post]
func (handler *base64Handler) Decode(ctx *gin.Context) {
	var request Base64Request
	if !bindJSON(ctx, metrics.OpDecode, algorithmBase64, &request) {
		return
	}

	start := time.Now()
	var (
		result *app.Result
		err    error
	)
	if request.Advanced {
		result, err = handler.base64Service.Decode(toBase64Request(request))
	} else {
		result, err = handler.base64Service.DecodeBasic(request.Text)
	}
	observe(metrics.OpDecode, algorithmBase64, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpDecode, algorithmBase64, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultResponse{Output: result.Output, Info: result.Info})
}

func toBase64Request(r Base64Request) app.Base64Request {
	return app.Base64Request{
		Text:         r.Text,
		Variant:      r.Variant,
		LineBreaks:   r.LineBreaks,
		InputFormat:  r.InputFormat,
		OutputFormat: r.OutputFormat,
	}
}
