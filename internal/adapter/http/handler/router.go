package handler

import (
	"boltcard-wallet/internal/adapter/http/middleware"
	"boltcard-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WithdrawSvc    ports.WithdrawChecker
	ResponsePoster ports.ResponsePoster
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes, all behind the ingress bearer token.
	auth := middleware.BearerAuth(deps.TokenSvc, deps.Logger)
	withdrawHandler := NewWithdrawHandler(deps.WithdrawSvc, deps.ResponsePoster, deps.Logger)

	v1 := r.Group("/api/v1", auth)
	{
		v1.POST("/withdrawals", withdrawHandler.Create)
	}

	return r
}
