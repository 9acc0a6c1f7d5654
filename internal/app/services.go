// Package app provides service initialization.
package app

import (
	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator *service.QuoteCalculatorService
	Checkout   service.CheckoutService
	Sessions   *session.Store
	// Verifier is nil when no JWT secret is configured.
	Verifier service.TokenVerifier
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	components := &ServiceComponents{
		Calculator: service.NewQuoteCalculatorService(opts...),
		Checkout:   service.NewCheckoutService(),
		Sessions:   session.NewStore(cfg.Session.Capacity, cfg.Session.TTL),
	}

	if cfg.Auth.JWTSecretKey != "" {
		components.Verifier = service.NewTokenVerifier(cfg.Auth.JWTSecretKey)
	}

	return components
}

// Close stops background work owned by the services.
func (c *ServiceComponents) Close() {
	if c != nil && c.Sessions != nil {
		c.Sessions.Stop()
	}
}
