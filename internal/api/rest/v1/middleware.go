package v1

import (
	"time"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength fits the longest form uuid.Parse accepts, urn:uuid:<36 chars>.
const maxRequestIDLength = 45

// RequestID echoes the caller's X-Request-ID when it is a UUID and assigns a new UUID otherwise.
// Accepted IDs are rewritten in canonical form before reaching headers or logs.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.New().String()
		if raw := ctx.GetHeader(RequestIDHeader); raw != "" && len(raw) <= maxRequestIDLength {
			if parsed, err := uuid.Parse(raw); err == nil {
				id = parsed.String()
			}
		}
		ctx.Set(RequestIDHeader, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// AccessLog logs one line per request through the toolbox logger, tagged with the request ID.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		requestLog := log.With("request_id", ctx.GetString(RequestIDHeader))
		args := []interface{}{
			ctx.Request.Method, " ", ctx.Request.URL.Path, " ", status, " ", time.Since(start).String(),
		}
		if status >= 500 {
			requestLog.Error(args...)
			return
		}
		requestLog.Info(args...)
	}
}
