package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles the GET request for liveness checks
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
