package v1

import (
	"github.com/MGTheTrain/crypto-toolbox/internal/app"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	aesService app.AESService,
	base64Service app.Base64Service,
	md5Service app.MD5Service,
	maxUploadBytes int64) {

	v1 := r.Group(BasePath)

	v1.GET("/health", Health)

	// AES Routes
	aesHandler := NewAESHandler(aesService)
	v1.POST("/aes/encrypt", aesHandler.Encrypt)
	v1.POST("/aes/decrypt", aesHandler.Decrypt)
	v1.GET("/aes/iv", aesHandler.GenerateIV)

	// Base64 Routes
	base64Handler := NewBase64Handler(base64Service)
	v1.POST("/base64/encode", base64Handler.Encode)
	v1.POST("/base64/decode", base64Handler.Decode)

	// MD5 Routes
	md5Handler := NewMD5Handler(md5Service, maxUploadBytes)
	v1.POST("/md5/hash", md5Handler.Hash)
	v1.POST("/md5/file", md5Handler.HashFile)
	v1.POST("/md5/verify", md5Handler.Verify)
}
