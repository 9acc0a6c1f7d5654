package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderRouter(t *testing.T, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())
	router := gin.New()
	router.Use(middleware.RequestID())
	router.POST("/test", handler)
	return router
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		send       func(b *ResponseBuilder)
		wantStatus int
	}{
		{
			name:       "ok",
			send:       func(b *ResponseBuilder) { b.SuccessOK(dto.QuoteView{Available: true, Fee: "19.70", ZoneKey: "3"}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "created",
			send:       func(b *ResponseBuilder) { b.SuccessCreated(dto.QuoteView{Available: true, Fee: "19.70", ZoneKey: "3"}) },
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := builderRouter(t, func(c *gin.Context) { tt.send(NewResponseBuilder(c)) })

			w := doJSON(router, http.MethodPost, "/test", "", map[string]string{middleware.RequestIDHeader: "req-7"})

			require.Equal(t, tt.wantStatus, w.Code)
			view := decodeData[dto.QuoteView](t, w)
			assert.Equal(t, "19.70", view.Fee)
			assert.Equal(t, "3", view.ZoneKey)
			assert.Contains(t, w.Body.String(), `"request_id":"req-7"`)
		})
	}
}

func TestResponseBuilder_PooledEnvelopesDoNotLeak(t *testing.T) {
	router := builderRouter(t, func(c *gin.Context) {
		if c.Query("fail") != "" {
			NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil, map[string]string{"items": "required"})
			return
		}
		NewResponseBuilder(c).SuccessOK(nil)
	})

	first := doJSON(router, http.MethodPost, "/test?fail=1", "", nil)
	require.Equal(t, http.StatusBadRequest, first.Code)
	assert.Equal(t, map[string]string{"items": "required"}, decodeError(t, first).Details)

	second := doJSON(router, http.MethodPost, "/test?fail=1", "", nil)
	assert.NotEqual(t, decodeError(t, first).RequestID, decodeError(t, second).RequestID)

	ok := doJSON(router, http.MethodPost, "/test", "", nil)
	require.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"data":null`)
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name        string
		locale      string
		key         string
		err         error
		wantMessage string
		wantErrors  int
	}{
		{
			name:        "default locale",
			key:         i18n.ErrKeySessionNotFound,
			err:         session.ErrSessionNotFound,
			wantMessage: "Carrinho não encontrado ou expirado",
			wantErrors:  1,
		},
		{
			name:        "english",
			locale:      "en-US",
			key:         i18n.ErrKeySessionNotFound,
			wantMessage: i18n.GetTranslator().Translate(i18n.ErrKeySessionNotFound, "en"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attached int
			router := builderRouter(t, func(c *gin.Context) {
				NewResponseBuilder(c).Error(http.StatusNotFound, tt.key, tt.err)
				attached = len(c.Errors)
			})
			headers := map[string]string{}
			if tt.locale != "" {
				headers[i18n.AcceptLanguageHeader] = tt.locale
			}

			w := doJSON(router, http.MethodPost, "/test", "", headers)

			require.Equal(t, http.StatusNotFound, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			assert.False(t, resp.Timestamp.IsZero())
			assert.Equal(t, tt.wantErrors, attached)
		})
	}
}

func TestResponseBuilder_Fail(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails map[string]string
	}{
		{
			name:       "session not found",
			err:        fmt.Errorf("load: %w", session.ErrSessionNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "shipping pending",
			err:        service.ErrShippingPending,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   dto.ErrCodeUnprocessable,
		},
		{
			name:       "stale revision",
			err:        service.ErrStaleRevision,
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrCodeConflict,
		},
		{
			name:       "circuit open",
			err:        circuitbreaker.ErrCircuitOpen,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   dto.ErrCodeUnavailable,
		},
		{
			name:        "field validation",
			err:         &dto.ValidationError{Field: "items[1].quantity", Message: "must be at least 1"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrCodeInvalidRequest,
			wantDetails: map[string]string{"items[1].quantity": "must be at least 1"},
		},
		{
			name:       "invalid mode",
			err:        dto.ErrInvalidMode,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := builderRouter(t, func(c *gin.Context) { NewResponseBuilder(c).Fail(tt.err) })

			w := doJSON(router, http.MethodPost, "/test", "", nil)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.Equal(t, tt.wantDetails, resp.Details)
		})
	}
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantDetails map[string]string
	}{
		{
			name:       "valid",
			body:       `{"items":[{"id":"whey-900g","unit_price":"49.90","quantity":2}],"postal_code":"30130-000"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed json",
			body:       `{"items":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "binding tag",
			body:        `{"items":[]}`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: map[string]string{"items": "min"},
		},
		{
			name:        "validate method",
			body:        `{"items":[{"id":"whey-900g","unit_price":"-1","quantity":1}]}`,
			wantStatus:  http.StatusBadRequest,
			wantDetails: map[string]string{"items[0].unit_price": "must not be negative"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *dto.QuoteRequest
			router := builderRouter(t, func(c *gin.Context) {
				b := NewResponseBuilder(c)
				req, ok := bindJSON[dto.QuoteRequest](b)
				if !ok {
					return
				}
				got = req
				b.SuccessOK(nil)
			})

			w := doJSON(router, http.MethodPost, "/test", tt.body, nil)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, got)
				assert.Equal(t, "30130-000", got.PostalCode)
				assert.Len(t, got.Items, 1)
				return
			}
			assert.Nil(t, got)
			assert.Equal(t, tt.wantDetails, decodeError(t, w).Details)
		})
	}
}
