package handler

import (
	"fincore/internal/core/ports"
	"fincore/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListBreakers handles GET /api/v1/breakers.
func ListBreakers(breaker ports.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, breaker.States())
	}
}
