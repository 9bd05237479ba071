//go:build unit
// +build unit

package v1

import (
	"io"

	"github.com/MGTheTrain/crypto-toolbox/internal/app"

	"github.com/stretchr/testify/mock"
)

// MockAESService is a mock implementation of AESService
type MockAESService struct {
	mock.Mock
}

func (m *MockAESService) EncryptBasic(text, passphrase string) (*app.Result, error) {
	args := m.Called(text, passphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockAESService) DecryptBasic(text, passphrase string) (*app.Result, error) {
	args := m.Called(text, passphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockAESService) Encrypt(req app.AESRequest) (*app.Result, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockAESService) Decrypt(req app.AESRequest) (*app.Result, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockAESService) GenerateIV() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockBase64Service is a mock implementation of Base64Service
type MockBase64Service struct {
	mock.Mock
}

func (m *MockBase64Service) EncodeBasic(text string) (*app.Result, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockBase64Service) DecodeBasic(text string) (*app.Result, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockBase64Service) Encode(req app.Base64Request) (*app.Result, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockBase64Service) Decode(req app.Base64Request) (*app.Result, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

// MockMD5Service is a mock implementation of MD5Service
type MockMD5Service struct {
	mock.Mock
}

func (m *MockMD5Service) Hash(text string) (*app.Result, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockMD5Service) HashAdvanced(req app.MD5Request) (*app.Result, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockMD5Service) HashFile(r io.Reader, name string, size int64, req app.MD5Request) (*app.Result, error) {
	args := m.Called(r, name, size, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.Result), args.Error(1)
}

func (m *MockMD5Service) Verify(text, expected string) (*app.VerifyResult, error) {
	args := m.Called(text, expected)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.VerifyResult), args.Error(1)
}
