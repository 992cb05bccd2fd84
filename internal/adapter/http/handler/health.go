package handler

import (
	"net/http"

	"boltcard-wallet/internal/adapter/http/dto"
	"boltcard-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler that pings every backing dependency.
// Any failing dependency degrades the overall status to 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponse{
			Status:       "ok",
			Dependencies: make(map[string]string, len(checkers)),
		}

		code := http.StatusOK
		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				resp.Dependencies[checker.Name()] = "unreachable"
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Dependencies[checker.Name()] = "ok"
		}

		c.JSON(code, resp)
	}
}
