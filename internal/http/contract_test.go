//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContractRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := session.NewStore(10, time.Hour)
	t.Cleanup(store.Stop)

	calculator := service.NewQuoteCalculatorService()
	return NewRouter(NewHealthHandler(), RouterConfig{
		RateLimit:     100,
		RateWindow:    time.Minute,
		Calculator:    calculator,
		TariffService: service.NewTariffService(nil, calculator),
		SessionStore:  store,
	})
}

func dataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
	assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "Data must be an object")
	return data
}

func assertKeys(t *testing.T, obj map[string]interface{}, keys ...string) {
	t.Helper()
	for _, key := range keys {
		assert.Contains(t, obj, key)
	}
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router := newContractRouter(t)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/shipping/quote - Success 200",
			method:         http.MethodPost,
			path:           "/api/shipping/quote",
			body:           `{"items":` + wheyCart + `,"postal_code":"30130-000"}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				quote := dataObject(t, w)
				assertKeys(t, quote, "available", "status", "fee", "fee_label", "zone_key", "postal_code", "tariff_version")
				assert.Equal(t, true, quote["available"])
				assert.Equal(t, "19.70", quote["fee"])
				assert.Equal(t, "R$ 19,70", quote["fee_label"])
			},
		},
		{
			name:           "POST /api/shipping/quote - Pending quote 200",
			method:         http.MethodPost,
			path:           "/api/shipping/quote",
			body:           `{"items":` + wheyCart + `,"postal_code":"301"}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				quote := dataObject(t, w)
				assert.Equal(t, false, quote["available"])
				assert.Equal(t, "pending", quote["status"])
				assert.NotContains(t, quote, "zone_key")
			},
		},
		{
			name:           "POST /api/cart/summary - Success 200",
			method:         http.MethodPost,
			path:           "/api/cart/summary",
			body:           `{"items":` + wheyCart + `,"mode":"RETIRADA"}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				summary := dataObject(t, w)
				assertKeys(t, summary, "subtotal", "subtotal_label", "shipping_fee", "shipping_status",
					"shipping_label", "total", "total_label", "item_count", "item_count_label")
				assert.Equal(t, "waived", summary["shipping_status"])
				assert.Equal(t, "Grátis", summary["shipping_label"])
			},
		},
		{
			name:           "POST /api/sessions - Created 201",
			method:         http.MethodPost,
			path:           "/api/sessions",
			body:           `{"items":` + wheyCart + `}`,
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				view := dataObject(t, w)
				assertKeys(t, view, "id", "items", "mode", "quote", "summary", "cart_count", "checkout_enabled", "revision", "updated_at")
				assert.Equal(t, "RETIRADA", view["mode"])
				assert.Equal(t, true, view["checkout_enabled"])
			},
		},
		{
			name:           "GET /api/tariffs - Success 200",
			method:         http.MethodGet,
			path:           "/api/tariffs",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				tariff := dataObject(t, w)
				assertKeys(t, tariff, "version", "active", "default", "zones", "fallback", "unit_weight", "weight_rate", "minimum_fee")
			},
		},
		{
			name:           "POST /api/shipping/quote - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/shipping/quote",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/cart/summary - Error 400 Invalid Input",
			method:         http.MethodPost,
			path:           "/api/cart/summary",
			body:           `{"items":[{"id":"whey-900g","unit_price":"49.90","quantity":0}]}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Contains(t, resp.Details, "items[0].quantity")
			},
		},
		{
			name:           "GET /api/sessions/:id - Error 404",
			method:         http.MethodGet,
			path:           "/api/sessions/unknown",
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "ok", resp["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_ResponseSchema validates that response bodies decode into the documented views.
func TestAPI_ResponseSchema(t *testing.T) {
	router := newContractRouter(t)

	t.Run("SummaryView schema validation", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/cart/summary", `{"items":`+wheyCart+`,"mode":"ENTREGA","postal_code":"30130-000"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)

		summary := decodeData[dto.SummaryView](t, w)
		assert.Equal(t, "99.80", summary.Subtotal)
		assert.Equal(t, "19.70", summary.ShippingFee)
		assert.Equal(t, "119.50", summary.Total)
		assert.Equal(t, "R$ 119,50", summary.TotalLabel)
		assert.Equal(t, "2 itens", summary.ItemCountLabel)
	})

	t.Run("ErrorResponse schema validation", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/sessions/unknown/fulfillment", `{"mode":"TELEPORT"}`, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.NotEmpty(t, resp.Error)
		assert.NotEmpty(t, resp.Message)
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
	})
}

// TestAPI_Headers validates required headers are present.
func TestAPI_Headers(t *testing.T) {
	router := newContractRouter(t)

	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		headers         map[string]string
		expectedHeaders map[string]string
	}{
		{
			name:            "X-Request-ID generated",
			method:          http.MethodPost,
			path:            "/api/shipping/quote",
			body:            `{"items":` + wheyCart + `,"postal_code":"30130-000"}`,
			expectedHeaders: map[string]string{"X-Request-ID": ""},
		},
		{
			name:            "X-Request-ID propagated",
			method:          http.MethodGet,
			path:            "/healthz",
			headers:         map[string]string{"X-Request-ID": "req-42"},
			expectedHeaders: map[string]string{"X-Request-ID": "req-42"},
		},
		{
			name:            "Rate limit headers",
			method:          http.MethodGet,
			path:            "/api/tariffs",
			expectedHeaders: map[string]string{"X-RateLimit-Limit": "100", "X-RateLimit-Remaining": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, tt.method, tt.path, tt.body, tt.headers)

			for headerName, expectedValue := range tt.expectedHeaders {
				actualValue := w.Header().Get(headerName)
				if expectedValue == "" {
					assert.NotEmpty(t, actualValue, "Header %s must be present", headerName)
				} else {
					assert.Equal(t, expectedValue, actualValue, "Header %s mismatch", headerName)
				}
			}
		})
	}
}
