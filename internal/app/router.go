// Package app provides router configuration.
package app

import (
	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/http"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/guttosm/cart-pricing-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var tariffsRepo repository.TariffsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		tariffsRepo = dbComponents.TariffsRepo
		loggingService = dbComponents.LoggingService
	}

	tariffService := service.NewTariffService(tariffsRepo, services.Calculator)
	if tariffsRepo != nil {
		loadActiveTariff(tariffService)
	}

	healthHandler := http.NewHealthHandler()
	if services.Sessions != nil {
		healthHandler.SetSessionCounter(services.Sessions)
	}

	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.TariffsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_tariffs", dbComponents.TariffsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	if loggingService != nil {
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeyHashes:      cfg.Auth.APIKeyHashes,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		Calculator:        services.Calculator,
		TariffService:     tariffService,
		CheckoutService:   services.Checkout,
		SessionStore:      services.Sessions,
		Verifier:          services.Verifier,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
