package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vibe-gaming/profile-service/docs"
	"github.com/vibe-gaming/profile-service/pkg/limiter"
	"github.com/vibe-gaming/profile-service/pkg/logger"
	"github.com/vibe-gaming/profile-service/pkg/validator"

	internalV1 "github.com/vibe-gaming/profile-service/internal/api/http/internal/v1"
	"github.com/vibe-gaming/profile-service/internal/config"
	"github.com/vibe-gaming/profile-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services     *service.Services
	healthChecks map[string]HealthCheck
}

func NewHandlers(services *service.Services, healthChecks map[string]HealthCheck) *Handler {
	return &Handler{
		services:     services,
		healthChecks: healthChecks,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.RecoveryWithZap(logger.Logger(), true),
		requestIDMiddleware,
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		metricsMiddleware,
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.CORSOrigins),
	)

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler()))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", h.health)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	internalHandlersV1.Init(router)
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.healthChecks))
	for name, check := range h.healthChecks {
		if err := check(ctx); err != nil {
			logger.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	c.JSON(status, gin.H{"checks": checks})
}
