package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func fullRouterConfig(t *testing.T) RouterConfig {
	t.Helper()
	store := session.NewStore(10, time.Minute)
	t.Cleanup(store.Stop)
	calculator := service.NewQuoteCalculatorService()

	cfg := DefaultRouterConfig()
	cfg.Calculator = calculator
	cfg.SessionStore = store
	cfg.CheckoutService = service.NewCheckoutService()
	cfg.TariffService = service.NewTariffService(nil, calculator)
	return cfg
}

func routeSet(router *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewHealthHandler(), fullRouterConfig(t))
	routes := routeSet(router)

	expected := []string{
		"GET /healthz",
		"GET /readyz",
		"GET /metrics",
		"POST /api/shipping/quote",
		"POST /api/cart/summary",
		"POST /api/sessions",
		"GET /api/sessions/:id",
		"DELETE /api/sessions/:id",
		"PUT /api/sessions/:id/items",
		"DELETE /api/sessions/:id/items",
		"PATCH /api/sessions/:id/items/:item_id",
		"DELETE /api/sessions/:id/items/:item_id",
		"PUT /api/sessions/:id/fulfillment",
		"PUT /api/sessions/:id/postal-code",
		"PUT /api/sessions/:id/saved-address",
		"POST /api/sessions/:id/checkout",
		"GET /api/tariffs",
		"PUT /api/tariffs",
		"GET /api/tariffs/history",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestNewRouter_SkipsUnconfiguredGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(nil, RouterConfig{Calculator: service.NewQuoteCalculatorService()})
	routes := routeSet(router)

	assert.True(t, routes["POST /api/shipping/quote"])
	assert.False(t, routes["POST /api/sessions"])
	assert.False(t, routes["GET /api/tariffs"])
}

func TestRouter_Endpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(NewHealthHandler(), fullRouterConfig(t))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "healthz endpoint", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readyz endpoint", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics endpoint", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "swagger endpoint", method: http.MethodGet, path: "/swagger/index.html", expectedStatus: http.StatusOK},
		{name: "quote without body", method: http.MethodPost, path: "/api/shipping/quote", expectedStatus: http.StatusBadRequest},
		{name: "active tariff", method: http.MethodGet, path: "/api/tariffs", expectedStatus: http.StatusOK},
		{name: "history without storage", method: http.MethodGet, path: "/api/tariffs/history", expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_APIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, err := bcrypt.GenerateFromPassword([]byte("storefront-key"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := fullRouterConfig(t)
	cfg.EnableAuth = true
	cfg.APIKeyHashes = []string{string(hash)}
	router := NewRouter(nil, cfg)

	tests := []struct {
		name           string
		path           string
		key            string
		expectedStatus int
	}{
		{name: "missing key", path: "/api/tariffs", expectedStatus: http.StatusUnauthorized},
		{name: "wrong key", path: "/api/tariffs", key: "nope", expectedStatus: http.StatusUnauthorized},
		{name: "valid key", path: "/api/tariffs", key: "storefront-key", expectedStatus: http.StatusOK},
		{name: "health stays public", path: "/healthz", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := fullRouterConfig(t)
	cfg.RateLimit = 2
	cfg.RateWindow = time.Minute
	router := NewRouter(nil, cfg)

	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tariffs", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := fullRouterConfig(t)
	cfg.CORSOrigins = []string{"https://loja.example.com.br"}
	router := NewRouter(nil, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/cart/summary", nil)
	req.Header.Set("Origin", "https://loja.example.com.br")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type,Accept-Language")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://loja.example.com.br", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := fullRouterConfig(t)
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(nil, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
