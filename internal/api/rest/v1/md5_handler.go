package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/crypto"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// fileField is the multipart field carrying the upload for POST /md5/file.
const fileField = "file"

// MD5Handler defines the interface for handling MD5 operations
type MD5Handler interface {
	Hash(ctx *gin.Context)
	HashFile(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

// md5Handler struct holds the services
type md5Handler struct {
	md5Service     app.MD5Service
	maxUploadBytes int64
}

// NewMD5Handler creates a new MD5Handler. Uploads larger than maxUploadBytes are rejected with 413.
func NewMD5Handler(md5Service app.MD5Service, maxUploadBytes int64) MD5Handler {
	return &md5Handler{
		md5Service:     md5Service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Hash handles the POST request to hash text
// @Summary MD5 hash text
// @Tags MD5
// @Accept json
// @Produce json
// @Param requestBody body MD5HashRequest true "MD5 request"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Router /md5/hash [post]
func (handler *md5Handler) Hash(ctx *gin.Context) {
	var request MD5HashRequest
	if !bindJSON(ctx, metrics.OpHash, crypto.AlgorithmMD5, &request) {
		return
	}

	start := time.Now()
	var (
		result *app.Result
		err    error
	)
	if request.Advanced {
		result, err = handler.md5Service.HashAdvanced(app.MD5Request{
			Text:       request.Text,
			Encoding:   request.Encoding,
			Salt:       request.Salt,
			Iterations: request.Iterations,
			Format:     request.Format,
		})
	} else {
		result, err = handler.md5Service.Hash(request.Text)
	}
	observe(metrics.OpHash, crypto.AlgorithmMD5, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpHash, crypto.AlgorithmMD5, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultResponse{Output: result.Output, Info: result.Info})
}

// HashFile handles the POST request to hash an uploaded file
// @Summary MD5 hash an uploaded file
// @Tags MD5
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to hash"
// @Param salt formData string false "Salt prepended to the file contents"
// @Param iterations formData int false "Digest iterations"
// @Param format formData string false "hex, base64 or binary"
// @Success 200 {object} ResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /md5/file [post]
func (handler *md5Handler) HashFile(ctx *gin.Context) {
	if handler.maxUploadBytes > 0 {
		if ctx.Request.ContentLength > handler.maxUploadBytes {
			handler.abortTooLarge(ctx)
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxUploadBytes)
	}

	fileHeader, err := ctx.FormFile(fileField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			handler.abortTooLarge(ctx)
			return
		}
		metrics.RecordError(metrics.OpHashFile, crypto.AlgorithmMD5, "bad_request")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("missing %q file: %v", fileField, err)})
		return
	}

	iterations := 0
	if raw := ctx.PostForm("iterations"); raw != "" {
		iterations, err = strconv.Atoi(raw)
		if err != nil {
			abortWithError(ctx, metrics.OpHashFile, crypto.AlgorithmMD5, fmt.Errorf("%w: iterations must be an integer", errValidation))
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(ctx, metrics.OpHashFile, crypto.AlgorithmMD5, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	start := time.Now()
	result, err := handler.md5Service.HashFile(file, fileHeader.Filename, fileHeader.Size, app.MD5Request{
		Salt:       ctx.PostForm("salt"),
		Iterations: iterations,
		Format:     ctx.PostForm("format"),
	})
	observe(metrics.OpHashFile, crypto.AlgorithmMD5, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpHashFile, crypto.AlgorithmMD5, err)
		return
	}

	ctx.JSON(http.StatusOK, ResultResponse{Output: result.Output, Info: result.Info})
}

// Verify handles the POST request to verify text against an expected digest
// @Summary Verify an MD5 hash
// @Tags MD5
// @Accept json
// @Produce json
// @Param requestBody body MD5VerifyRequest true "Verify request"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /md5/verify [post]
func (handler *md5Handler) Verify(ctx *gin.Context) {
	var request MD5VerifyRequest
	if !bindJSON(ctx, metrics.OpVerify, crypto.AlgorithmMD5, &request) {
		return
	}

	start := time.Now()
	result, err := handler.md5Service.Verify(request.Text, request.Expected)
	observe(metrics.OpVerify, crypto.AlgorithmMD5, start, err)
	if err != nil {
		abortWithError(ctx, metrics.OpVerify, crypto.AlgorithmMD5, err)
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{
		Match:     result.Match,
		Generated: result.Generated,
		Provided:  result.Provided,
	})
}

func (handler *md5Handler) abortTooLarge(ctx *gin.Context) {
	metrics.RecordError(metrics.OpHashFile, crypto.AlgorithmMD5, "too_large")
	ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{
		Message: fmt.Sprintf("upload exceeds %d bytes", handler.maxUploadBytes),
	})
}
