package v1

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// AESHandler defines the interface for handling AES operations
type AESHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	GenerateIV(ctx *gin.Context)
}

// aesHandler struct holds the services
type aesHandler struct {
	aesService app.AESService
}

// NewAESHandler creates a new AESHandler
func NewAESHandler(aesService app.AESService) AESHandler {
	return &aesHandler{
		aesService: aesService,
	}
}

// Encrypt handles the POST request to encrypt text
// @Summary Encrypt text with AES
// @Description Basic requests encrypt with a passphrase into an OpenSSL compatible container. Advanced requests take key, IV, key size, mode, padding and output format.
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESRequest true "AES request"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /aes/encrypt [post]
func (handler *aesHandler) Encrypt(ctx *gin.Context) {
	var request AESRequest
	if !bindJSON(ctx, metrics.OpEncrypt, crypto.AlgorithmAES, &request) {
		return
	}

	start := time.Now()
	var (
		result *app.Result
		err    error
	)
	if request.Advanced {
		result, err = handler.aesService.Encrypt(toAESRequest(request))
	} else {
		result, err = handler.aesService.EncryptBasic(request.Text, request.Key)
	}
	observe(metrics.OpEncrypt, crypto.AlgorithmAES, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpEncrypt, crypto.AlgorithmAES, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultResponse{Output: result.Output, Info: result.Info})
}

// Decrypt handles the POST request to decrypt text
// @Summary Decrypt text with AES
// @Description Reverses /aes/encrypt. Inconsistent key, IV or padding yields 422.
// @Tags AES
// @Accept json
// @Produce json
// @Param requestBody body AESRequest true "AES request"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /aes/decrypt [post]
func (handler *aesHandler) Decrypt(ctx *gin.Context) {
	var request AESRequest
	if !bindJSON(ctx, metrics.OpDecrypt, crypto.AlgorithmAES, &request) {
		return
	}

	start := time.Now()
	var (
		result *app.Result
		err    error
	)
	if request.Advanced {
		result, err = handler.aesService.Decrypt(toAESRequest(request))
	} else {
		result, err = handler.aesService.DecryptBasic(request.Text, request.Key)
	}
	observe(metrics.OpDecrypt, crypto.AlgorithmAES, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpDecrypt, crypto.AlgorithmAES, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultResponse{Output: result.Output, Info: result.Info})
}

// GenerateIV handles the GET request for a random IV
// @Summary Generate a random IV
// @Description Returns 16 random alphanumeric characters.
// @Tags AES
// @Produce json
// @Success 200 {object} IVResponse
// @Router /aes/iv [get]
func (handler *aesHandler) GenerateIV(ctx *gin.Context) {
	start := time.Now()
	iv, err := handler.aesService.GenerateIV()
	observe(metrics.OpGenerateIV, crypto.AlgorithmAES, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpGenerateIV, crypto.AlgorithmAES, err)
		return
	}

	ctx.JSON(http.StatusOK, IVResponse{IV: iv})
}

func toAESRequest(r AESRequest) app.AESRequest {
	return app.AESRequest{
		Text:    r.Text,
		Key:     r.Key,
		IV:      r.IV,
		KeySize: r.KeySize,
		Mode:    r.Mode,
		Padding: r.Padding,
		Format:  r.Format,
	}
}

func observe(operation, algorithm string, start time.Time, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
	}
	metrics.RecordOperation(operation, algorithm, status, time.Since(start).Seconds())
}
