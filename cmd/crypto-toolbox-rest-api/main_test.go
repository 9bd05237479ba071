//go:build unit
// +build unit

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/ratelimit"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, mutate func(cfg *config.RestConfig)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.InitializeRestConfig("")
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	log := testutil.SetupTestLogger(t)
	services, err := initializeApplicationServices(log)
	require.NoError(t, err)

	limiter := ratelimit.New(&ratelimit.Config{
		Enabled:           cfg.RateLimit.Enabled,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
	})
	t.Cleanup(limiter.Stop)

	return newRouter(cfg, services, limiter, log)
}

func post(r *gin.Engine, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func outputOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response struct {
		Output string `json:"output"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Output
}

func TestRouter_Base64RoundTrip(t *testing.T) {
	r := setupRouter(t, nil)

	w := post(r, "/api/v1/ctb/base64/encode", `{"text": "Hello, World!"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SGVsbG8sIFdvcmxkIQ==", outputOf(t, w))

	w = post(r, "/api/v1/ctb/base64/decode", `{"text": "SGVsbG8sIFdvcmxkIQ=="}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, World!", outputOf(t, w))
}

func TestRouter_MD5(t *testing.T) {
	r := setupRouter(t, nil)

	w := post(r, "/api/v1/ctb/md5/hash", `{"text": "Hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "8b1a9953c4611296a827abf8c47804d7")
}

func TestRouter_AESRoundTrip(t *testing.T) {
	r := setupRouter(t, nil)

	w := post(r, "/api/v1/ctb/aes/encrypt", `{"text": "Hello", "key": "right"}`)
	require.Equal(t, http.StatusOK, w.Code)

	encrypted := outputOf(t, w)
	assert.True(t, strings.HasPrefix(encrypted, "U2FsdGVkX1"))

	w = post(r, "/api/v1/ctb/aes/decrypt", `{"text": "`+encrypted+`", "key": "right"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello", outputOf(t, w))

	w = post(r, "/api/v1/ctb/aes/decrypt", `{"text": "`+encrypted+`", "key": "wrong"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	r := setupRouter(t, nil)

	post(r, "/api/v1/ctb/md5/hash", `{"text": "Hello"}`)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "crypto_toolbox_operations_total")
}

func TestRouter_RateLimited(t *testing.T) {
	r := setupRouter(t, func(cfg *config.RestConfig) {
		cfg.Metrics.Enabled = false
		cfg.RateLimit = config.RateLimitSettings{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	})

	req, _ := http.NewRequest("GET", "/api/v1/ctb/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
