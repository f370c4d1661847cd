package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lexwatch-backend/internal/analyses"
	"lexwatch-backend/internal/documents"
	"lexwatch-backend/internal/scan"
	"lexwatch-backend/internal/services/health"
	"lexwatch-backend/internal/shared/config"
	"lexwatch-backend/internal/shared/metrics"
	"lexwatch-backend/internal/shared/server/middleware"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	DocumentsHandler *documents.Handler
	AnalysesHandler  *analyses.Handler
	ScanHandler      *scan.Handler
	Health           *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 5, Burst: 20},
				"POLLING": {Rate: 20, Burst: 60},
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if ok, _ := status["ok"].(bool); !ok {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
	api.GET("/metrics", metrics.Handler())

	deps.DocumentsHandler.RegisterRoutes(api)
	deps.AnalysesHandler.RegisterRoutes(api)
	deps.ScanHandler.RegisterRoutes(api)

	return r
}

// rateLimitGroup gives scan progress polling more headroom than mutating
// endpoints.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/scans/:id" {
		return "POLLING"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
