package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "generated when missing"},
		{name: "client ID kept", incoming: "checkout-7f3a", wantSame: true},
		{name: "longest accepted ID kept", incoming: strings.Repeat("a", maxRequestIDLength), wantSame: true},
		{name: "overlong ID replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "ID with spaces replaced", incoming: "two words"},
		{name: "non-ascii ID replaced", incoming: "pedido-ç"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			var fromGin string
			router := gin.New()
			router.Use(RequestID())
			router.GET("/api/tariffs", func(c *gin.Context) {
				fromGin = GetRequestID(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tariffs", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.NotEmpty(t, fromGin)
			assert.Equal(t, fromGin, w.Header().Get(RequestIDHeader))
			if tt.wantSame {
				assert.Equal(t, tt.incoming, fromGin)
			} else {
				_, err := uuid.Parse(fromGin)
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, GetRequestID(c))
}
