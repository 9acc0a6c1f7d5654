package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PricingRoutes registers the stateless quote and summary endpoints.
type PricingRoutes struct {
	handler *Handler
}

// NewPricingRoutes creates a new PricingRoutes instance.
func NewPricingRoutes(calculator service.QuoteCalculator) *PricingRoutes {
	return &PricingRoutes{handler: NewHandler(calculator)}
}

// RegisterRoutes implements RouteGroup.
func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/shipping/quote", r.handler.Quote)
	rg.POST("/cart/summary", r.handler.Summary)
}

// SessionRoutes registers the cart session endpoints.
type SessionRoutes struct {
	handler *SessionHandler
}

// NewSessionRoutes creates a new SessionRoutes instance.
func NewSessionRoutes(store *session.Store, calculator service.QuoteCalculator, checkout service.CheckoutService, enforceOwnership bool) *SessionRoutes {
	return &SessionRoutes{handler: NewSessionHandler(store, calculator, checkout, enforceOwnership)}
}

// RegisterRoutes implements RouteGroup.
func (r *SessionRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", r.handler.Create)
		sessions.GET("/:id", r.handler.Get)
		sessions.DELETE("/:id", r.handler.Delete)

		sessions.PUT("/:id/items", r.handler.ReplaceItems)
		sessions.DELETE("/:id/items", r.handler.ClearItems)
		sessions.PATCH("/:id/items/:item_id", r.handler.UpdateQuantity)
		sessions.DELETE("/:id/items/:item_id", r.handler.RemoveItem)

		sessions.PUT("/:id/fulfillment", r.handler.SetFulfillment)
		sessions.PUT("/:id/postal-code", r.handler.EnterPostalCode)
		sessions.PUT("/:id/saved-address", r.handler.UseSavedAddress)

		sessions.POST("/:id/checkout", r.handler.Checkout)
	}
}

// TariffRoutes registers the tariff administration endpoints.
type TariffRoutes struct {
	handler *TariffHandler
}

// NewTariffRoutes creates a new TariffRoutes instance.
func NewTariffRoutes(tariffService service.TariffService) *TariffRoutes {
	return &TariffRoutes{handler: NewTariffHandler(tariffService)}
}

// RegisterRoutes implements RouteGroup. Publishing a tariff requires the admin
// role when bearer tokens are verified.
func (r *TariffRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/tariffs", r.handler.GetActiveTariff)
	rg.GET("/tariffs/history", r.handler.ListTariffs)

	if cfg != nil && cfg.Verifier != nil {
		rg.PUT("/tariffs",
			middleware.JWTAuth(cfg.Verifier),
			middleware.RequireRole(middleware.RoleAdmin),
			r.handler.UpdateTariff,
		)
		return
	}
	rg.PUT("/tariffs", r.handler.UpdateTariff)
}

// LogRoutes registers the log search endpoint for operators.
type LogRoutes struct {
	handler *LogsHandler
}

// NewLogRoutes creates a new LogRoutes instance.
func NewLogRoutes(logging service.LoggingService) *LogRoutes {
	return &LogRoutes{handler: NewLogsHandler(logging)}
}

// RegisterRoutes implements RouteGroup. With bearer tokens the admin role is
// required; with API keys the group-level key check applies.
func (r *LogRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	if cfg != nil && cfg.Verifier != nil {
		rg.GET("/admin/logs",
			middleware.JWTAuth(cfg.Verifier),
			middleware.RequireRole(middleware.RoleAdmin),
			r.handler.Search,
		)
		return
	}
	rg.GET("/admin/logs", r.handler.Search)
}
