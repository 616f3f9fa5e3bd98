package routes

import (
	"context"
	"net/http"

	"swifttrack-dashboard/internal/apiclient"
	"swifttrack-dashboard/internal/app"
	"swifttrack-dashboard/internal/config"
	"swifttrack-dashboard/internal/delivery/http/handler"
	"swifttrack-dashboard/internal/logger"
	"swifttrack-dashboard/internal/middleware"
	"swifttrack-dashboard/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthChecker reports whether session storage is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Dependencies are built by main and shared by every request.
type Dependencies struct {
	Shell       *app.Shell
	Store       *session.Store
	Records     handler.RecordSource
	Storage     HealthChecker
	RateLimiter *middleware.RateLimiter

	// UpstreamMetrics, when set, is reported by /health
	UpstreamMetrics func() apiclient.CallMetrics
}

func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order: recovery, request ID, logging, security headers, CORS, request size limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	router.GET("/health", func(c *gin.Context) {
		if deps.Storage != nil {
			if err := deps.Storage.Health(c.Request.Context()); err != nil {
				middleware.GetLogger(c).Error("Session storage unhealthy", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"message": "Session storage unavailable",
				})
				return
			}
		}

		body := gin.H{
			"status":  "healthy",
			"message": "Service is running",
			"view":    deps.Shell.ViewName(),
		}
		if deps.UpstreamMetrics != nil {
			body["upstream"] = deps.UpstreamMetrics()
		}
		c.JSON(http.StatusOK, body)
	})

	sessionHandler := handler.NewSessionHandler(deps.Shell)
	dashboardHandler := handler.NewDashboardHandler(deps.Shell, deps.Records)

	v1 := router.Group("/api/v1")
	{
		sessionHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.RequireSession(deps.Store))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}
		{
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
