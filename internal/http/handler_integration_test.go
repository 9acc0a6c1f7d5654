//go:build integration

package http

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/guttosm/cart-pricing-service/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type integrationEnv struct {
	router     *gin.Engine
	db         *repository.MongoDB
	tariffs    service.TariffService
	calculator *service.QuoteCalculatorService
}

func setupIntegrationEnv(t *testing.T) *integrationEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMongoDB(testutil.SharedMongoURI(), testutil.DatabaseName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	calculator := service.NewQuoteCalculatorService(service.WithCache(100, 5*time.Minute))

	tariffsCB := circuitbreaker.New(circuitbreaker.DefaultConfig())
	tariffsRepo := repository.NewTariffsRepositoryWithCircuitBreaker(repository.NewTariffsRepository(db), tariffsCB)
	tariffService := service.NewTariffService(tariffsRepo, calculator)

	logsCB := circuitbreaker.New(circuitbreaker.DefaultConfig())
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	store := session.NewStore(100, time.Hour)
	t.Cleanup(store.Stop)

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", HealthCheckFunc(db.HealthCheck))
	health.RegisterCircuitBreaker("mongodb_tariffs", tariffsCB)
	health.SetSessionCounter(store)

	cfg := RouterConfig{
		RateLimit:       100,
		RateWindow:      time.Minute,
		LoggingService:  service.NewLoggingService(logsRepo),
		Calculator:      calculator,
		TariffService:   tariffService,
		CheckoutService: service.NewCheckoutService(),
		SessionStore:    store,
	}

	return &integrationEnv{
		router:     NewRouter(health, cfg),
		db:         db,
		tariffs:    tariffService,
		calculator: calculator,
	}
}

func TestIntegration_TariffLifecycle(t *testing.T) {
	env := setupIntegrationEnv(t)

	w := doJSON(env.router, http.MethodGet, "/api/tariffs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeData[dto.TariffView](t, w).Default)

	w = doJSON(env.router, http.MethodPut, "/api/tariffs", `{"zones":{"3":{"base":"10.00","per_item":"1.00"}},"minimum_fee":"0"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stored := decodeData[dto.TariffView](t, w)
	assert.Equal(t, 1, stored.Version)

	w = doJSON(env.router, http.MethodPost, "/api/shipping/quote", `{"items":`+wheyCart+`,"postal_code":"30130-000"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	quote := decodeData[dto.QuoteView](t, w)
	assert.Equal(t, "11.50", quote.Fee)
	assert.Equal(t, 1, quote.TariffVersion)

	w = doJSON(env.router, http.MethodPut, "/api/tariffs", `{"zones":{"3":{"base":"12.00","per_item":"1.00"}}}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(env.router, http.MethodGet, "/api/tariffs/history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := decodeData[[]dto.TariffView](t, w)
	require.Len(t, history, 2)
	assert.Equal(t, 2, history[0].Version)
	assert.True(t, history[0].Active)
	assert.False(t, history[1].Active)
}

func TestIntegration_RefreshLoadsStoredTariff(t *testing.T) {
	env := setupIntegrationEnv(t)
	ctx := context.Background()

	tariff := pricing.DefaultTariff()
	tariff.Zones["3"] = model.NewZoneRate(21, 1.4)
	_, err := repository.NewTariffsRepository(env.db).Create(ctx, tariff, "seed")
	require.NoError(t, err)

	refreshed, err := env.tariffs.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.Version)
	assert.Equal(t, 1, env.calculator.Tariff().Version)
	assert.True(t, env.calculator.Tariff().Zones["3"].Base.Equal(decimal.NewFromInt(21)))
}

func TestIntegration_SessionRepricesAfterTariffUpdate(t *testing.T) {
	env := setupIntegrationEnv(t)

	w := doJSON(env.router, http.MethodPost, "/api/sessions", `{"items":`+wheyCart+`}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData[dto.SessionView](t, w).ID
	base := "/api/sessions/" + id

	require.Equal(t, http.StatusOK, doJSON(env.router, http.MethodPut, base+"/fulfillment", `{"mode":"ENTREGA"}`, nil).Code)
	w = doJSON(env.router, http.MethodPut, base+"/postal-code", `{"postal_code":"30130-000"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	before := decodeData[dto.SessionView](t, w)
	assert.Equal(t, "19.70", before.Summary.ShippingFee)

	w = doJSON(env.router, http.MethodPut, "/api/tariffs", `{"zones":{"3":{"base":"30.00","per_item":"0"}}}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(env.router, http.MethodPost, base+"/checkout", `{"phone":"31999990000","revision":`+strconv.Itoa(before.Revision)+`,"address":`+completeAddress+`}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(env.router, http.MethodGet, base, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	after := decodeData[dto.SessionView](t, w)
	assert.Equal(t, "30.50", after.Summary.ShippingFee)

	w = doJSON(env.router, http.MethodPost, base+"/checkout", `{"phone":"31999990000","revision":`+strconv.Itoa(after.Revision)+`,"address":`+completeAddress+`}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "130.30", decodeData[dto.CheckoutView](t, w).Total)
}

func TestIntegration_RequestsAreLogged(t *testing.T) {
	env := setupIntegrationEnv(t)
	ctx := context.Background()

	w := doJSON(env.router, http.MethodPost, "/api/cart/summary", `{"items":`+wheyCart+`}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	logsRepo := repository.NewLogsRepository(env.db)
	assert.Eventually(t, func() bool {
		logs, err := logsRepo.Query(ctx, model.LogQueryOptions{Path: "/api/cart/summary"})
		return err == nil && len(logs) >= 1
	}, 2*time.Second, 50*time.Millisecond)
}

func TestIntegration_Readiness(t *testing.T) {
	env := setupIntegrationEnv(t)

	w := doJSON(env.router, http.MethodGet, "/readyz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	assert.Contains(t, w.Body.String(), `"sessions":0`)
}
