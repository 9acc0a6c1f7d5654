package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		name        string
		handler     gin.HandlerFunc
		language    string
		wantStatus  int
		wantMessage string
		wantBody    string
	}{
		{
			name:        "panic becomes localized 500",
			handler:     func(c *gin.Context) { panic("nil tariff") },
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Ocorreu um erro inesperado",
		},
		{
			name:        "panic with english client",
			handler:     func(c *gin.Context) { panic(assert.AnError) },
			language:    "en-US",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred",
		},
		{
			name: "panic after the response started keeps it",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "partial")
				panic("late")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
		},
		{
			name:       "no panic",
			handler:    func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			captureLogs(t)

			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/api/cart/summary", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/api/cart/summary", nil)
			req.Header.Set(RequestIDHeader, "req-panic")
			if tt.language != "" {
				req.Header.Set("Accept-Language", tt.language)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInternal, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "req-panic", resp.RequestID)
		})
	}
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	captureLogs(t)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/abort", func(c *gin.Context) { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
}
