package http

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/mocks"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/stretchr/testify/assert"
)

func registered(router *gin.Engine) map[string]int {
	handlers := make(map[string]int)
	for _, r := range router.Routes() {
		handlers[r.Method+" "+r.Path]++
	}
	return handlers
}

func TestPricingRoutes_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	NewPricingRoutes(service.NewQuoteCalculatorService()).RegisterRoutes(router.Group("/api"), nil)

	routes := registered(router)
	assert.Len(t, routes, 2)
	assert.Contains(t, routes, "POST /api/shipping/quote")
	assert.Contains(t, routes, "POST /api/cart/summary")
}

func TestSessionRoutes_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := session.NewStore(10, time.Minute)
	t.Cleanup(store.Stop)

	NewSessionRoutes(store, service.NewQuoteCalculatorService(), service.NewCheckoutService(), false).
		RegisterRoutes(router.Group("/api"), nil)

	assert.Len(t, registered(router), 11)
}

func TestTariffRoutes_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("without verifier", func(t *testing.T) {
		router := gin.New()
		NewTariffRoutes(mocks.NewMockTariffService(t)).RegisterRoutes(router.Group("/api"), &RouterConfig{})

		routes := registered(router)
		assert.Contains(t, routes, "GET /api/tariffs")
		assert.Contains(t, routes, "PUT /api/tariffs")
		assert.Contains(t, routes, "GET /api/tariffs/history")
	})

	t.Run("with verifier", func(t *testing.T) {
		router := gin.New()
		cfg := &RouterConfig{Verifier: mocks.NewMockTokenVerifier(t)}
		NewTariffRoutes(mocks.NewMockTariffService(t)).RegisterRoutes(router.Group("/api"), cfg)

		assert.Contains(t, registered(router), "PUT /api/tariffs")
	})
}

func TestRouteGroups(t *testing.T) {
	store := session.NewStore(10, time.Minute)
	t.Cleanup(store.Stop)
	calculator := service.NewQuoteCalculatorService()

	tests := []struct {
		name string
		cfg  RouterConfig
		want int
	}{
		{name: "nothing configured", cfg: RouterConfig{}, want: 0},
		{name: "calculator only", cfg: RouterConfig{Calculator: calculator}, want: 1},
		{name: "sessions need the calculator", cfg: RouterConfig{SessionStore: store}, want: 0},
		{name: "everything", cfg: RouterConfig{Calculator: calculator, SessionStore: store, TariffService: service.NewTariffService(nil, calculator)}, want: 3},
		{name: "logs without auth stay hidden", cfg: RouterConfig{LoggingService: mocks.NewMockLoggingService(t)}, want: 0},
		{name: "logs behind api keys", cfg: RouterConfig{LoggingService: mocks.NewMockLoggingService(t), EnableAuth: true, APIKeyHashes: []string{"hash"}}, want: 1},
		{name: "logs behind bearer tokens", cfg: RouterConfig{LoggingService: mocks.NewMockLoggingService(t), Verifier: mocks.NewMockTokenVerifier(t)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, routeGroups(&tt.cfg), tt.want)
		})
	}
}
