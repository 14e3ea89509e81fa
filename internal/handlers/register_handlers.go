package handlers

import (
	"github.com/SscSPs/fish_sales_app/cmd/docs"
	portssvc "github.com/SscSPs/fish_sales_app/internal/core/ports/services"
	"github.com/SscSPs/fish_sales_app/internal/middleware"
	"github.com/SscSPs/fish_sales_app/internal/utils"
	"github.com/SscSPs/fish_sales_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps holds the optional collaborators of the router. Nil fields are skipped.
type RouteDeps struct {
	DB           HealthChecker
	APILimiter   *limiter.Limiter
	LoginLimiter *limiter.Limiter
	Metrics      *middleware.Metrics
	Posthog      *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	r.GET("/health", getHealth(deps.DB))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	api := r.Group("/api/v1")

	// Register public authentication routes
	registerAuthRoutes(api, services.Auth, deps.LoginLimiter)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(api, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the protected part of /api/v1 and delegates to specific entity route registrations
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	chain := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)}
	if deps.APILimiter != nil {
		chain = append(chain, middleware.RateLimit(deps.APILimiter))
	}
	chain = append(chain, middleware.PosthogMiddleware(deps.Posthog))
	v1 := api.Group("", chain...)

	registerSaleRoutes(v1, services.Sale)
	registerReportingRoutes(v1, services.Reporting)
	registerActionLogRoutes(v1, services.ActionLog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
