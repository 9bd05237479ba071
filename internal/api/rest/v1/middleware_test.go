//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AccessLog(testutil.SetupTestLogger(t)))
	r.GET("/health", Health)
	r.GET("/fail", func(ctx *gin.Context) {
		ctx.AbortWithStatus(http.StatusInternalServerError)
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newMiddlewareRouter(t)

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		r.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		require.NoError(t, err)
	})

	t.Run("Echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set(RequestIDHeader, "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		r.ServeHTTP(w, req)

		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", w.Header().Get(RequestIDHeader))
	})

	t.Run("Canonicalized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		req.Header.Set(RequestIDHeader, "urn:uuid:6BA7B810-9DAD-11D1-80B4-00C04FD430C8")
		r.ServeHTTP(w, req)

		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", w.Header().Get(RequestIDHeader))
	})

	rejected := map[string]string{
		"NotUUID":      "abc-123",
		"LogInjection": "6ba7b810-9dad-11d1-80b4-00c04fd430c8\nlevel=ERROR msg=forged",
		"Oversized":    strings.Repeat("a", 4096),
	}
	for name, raw := range rejected {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/health", nil)
			req.Header.Set(RequestIDHeader, raw)
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.NotEqual(t, raw, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestAccessLog_PassesThrough(t *testing.T) {
	r := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/fail", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealth(t *testing.T) {
	r := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
