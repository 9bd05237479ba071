//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBase64Handler_Encode(t *testing.T) {
	mockService := new(MockBase64Service)
	handler := NewBase64Handler(mockService)
	mockService.On("EncodeBasic", "Hello").Return(&app.Result{Output: "SGVsbG8="}, nil)

	c, w := newJSONContext("POST", "/base64/encode", `{"text": "Hello"}`)
	handler.Encode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"output": "SGVsbG8="}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestBase64Handler_Encode_Advanced(t *testing.T) {
	mockService := new(MockBase64Service)
	handler := NewBase64Handler(mockService)

	expected := app.Base64Request{Text: "48656c6c6f", Variant: "urlsafe", LineBreaks: 4, InputFormat: "hex", OutputFormat: "base64"}
	mockService.On("Encode", expected).Return(&app.Result{Output: "SGVs\nbG8=", Info: "Encoding Type: urlsafe"}, nil)

	body := `{"text": "48656c6c6f", "advanced": true, "variant": "urlsafe", "line_breaks": 4,
		"input_format": "hex", "output_format": "base64"}`
	c, w := newJSONContext("POST", "/base64/encode", body)
	handler.Encode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBase64Handler_Decode_Malformed(t *testing.T) {
	mockService := new(MockBase64Service)
	handler := NewBase64Handler(mockService)
	mockService.On("DecodeBasic", "SGVsbG8*").
		Return(nil, &codec.FormatError{Format: codec.FormatBase64, Input: "SGVsbG8*", Reason: "illegal base64 data"})

	c, w := newJSONContext("POST", "/base64/decode", `{"text": "SGVsbG8*"}`)
	handler.Decode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "illegal base64 data")
}

func TestBase64Handler_InvalidVariant(t *testing.T) {
	mockService := new(MockBase64Service)
	handler := NewBase64Handler(mockService)

	c, w := newJSONContext("POST", "/base64/decode", `{"text": "SGVsbG8=", "advanced": true, "variant": "base32"}`)
	handler.Decode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Decode", mock.Anything)
}
