//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockAESService := new(MockAESService)
	mockBase64Service := new(MockBase64Service)
	mockMD5Service := new(MockMD5Service)

	mockAESService.On("GenerateIV").Return("0123456789abcdef", nil)

	r := gin.New()
	SetupRoutes(r, mockAESService, mockBase64Service, mockMD5Service, 32<<20)

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/v1/ctb/health"},
		{"POST", "/api/v1/ctb/aes/encrypt"},
		{"POST", "/api/v1/ctb/aes/decrypt"},
		{"GET", "/api/v1/ctb/aes/iv"},
		{"POST", "/api/v1/ctb/base64/encode"},
		{"POST", "/api/v1/ctb/base64/decode"},
		{"POST", "/api/v1/ctb/md5/hash"},
		{"POST", "/api/v1/ctb/md5/file"},
		{"POST", "/api/v1/ctb/md5/verify"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestSetupRoutes_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockAESService := new(MockAESService)
	mockBase64Service := new(MockBase64Service)
	mockMD5Service := new(MockMD5Service)

	mockBase64Service.On("EncodeBasic", "Hello").Return(&app.Result{Output: "SGVsbG8="}, nil)
	mockMD5Service.On("Hash", mock.Anything).Return(&app.Result{Output: "8b1a9953c4611296a827abf8c47804d7"}, nil)

	r := gin.New()
	SetupRoutes(r, mockAESService, mockBase64Service, mockMD5Service, 32<<20)

	req, _ := http.NewRequest("POST", BasePath+"/base64/encode", strings.NewReader(`{"text": "Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"output": "SGVsbG8="}`, w.Body.String())

	req, _ = http.NewRequest("GET", BasePath+"/md5/hash", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusOK, w.Code)
	mockMD5Service.AssertNotCalled(t, "Hash", mock.Anything)
}
