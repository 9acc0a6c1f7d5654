package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeyHashes      []string
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	Calculator        service.QuoteCalculator
	TariffService     service.TariffService
	CheckoutService   service.CheckoutService
	SessionStore      *session.Store
	// Verifier enables bearer token auth. Session ownership and the admin
	// role on tariff writes are only enforced when it is set.
	Verifier service.TokenVerifier
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableAuth:        false,
		EnableIdempotency: true,
	}
}

// NewRouter creates and configures the Gin router for the cart pricing service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	if err := RegisterValidators(); err != nil {
		log.Error().Err(err).Msg("failed to register request validators")
	}

	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range routeGroups(&cfg) {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

// routeGroups returns the business route groups that have their dependencies configured.
func routeGroups(cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if cfg.Calculator != nil {
		groups = append(groups, NewPricingRoutes(cfg.Calculator))
		if cfg.SessionStore != nil {
			checkout := cfg.CheckoutService
			if checkout == nil {
				checkout = service.NewCheckoutService()
			}
			groups = append(groups, NewSessionRoutes(cfg.SessionStore, cfg.Calculator, checkout, cfg.Verifier != nil))
		}
	}
	if cfg.TariffService != nil {
		groups = append(groups, NewTariffRoutes(cfg.TariffService))
	}
	// Logs are only served behind bearer or API-key auth.
	if cfg.LoggingService != nil && (cfg.Verifier != nil || (cfg.EnableAuth && len(cfg.APIKeyHashes) > 0)) {
		groups = append(groups, NewLogRoutes(cfg.LoggingService))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	router.Use(func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	switch {
	case cfg.Verifier != nil:
		api.Use(middleware.OptionalJWTAuth(cfg.Verifier))
		if cfg.RateLimit > 0 {
			userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
			api.Use(userLimiter.UserRateLimit())
		}
	case cfg.EnableAuth && len(cfg.APIKeyHashes) > 0:
		api.Use(middleware.APIKeyAuth(cfg.APIKeyHashes))
	}

	// After auth so replays are scoped to the authenticated customer.
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}
