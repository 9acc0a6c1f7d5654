// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/service"
)

const (
	// ClaimsKey is the gin context key holding *dto.Claims.
	ClaimsKey = "customer_claims"
	// CustomerIDKey is the gin context key holding the customer id string.
	CustomerIDKey = "customer_id"

	bearerPrefix = "Bearer "
)

// JWTAuth returns a middleware that rejects requests without a valid bearer token.
func JWTAuth(verifier service.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}
		if !authenticate(c, verifier, authHeader) {
			return
		}
		c.Next()
	}
}

// OptionalJWTAuth identifies the customer when a bearer token is present.
// Anonymous requests pass through; a present but invalid token is rejected.
func OptionalJWTAuth(verifier service.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && !authenticate(c, verifier, authHeader) {
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, verifier service.TokenVerifier, authHeader string) bool {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		abortUnauthorized(c, i18n.ErrKeyInvalidToken)
		return false
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		abortUnauthorized(c, i18n.ErrKeyTokenRequired)
		return false
	}

	claims, err := verifier.Verify(c.Request.Context(), tokenString)
	if err != nil {
		abortUnauthorized(c, i18n.ErrKeyInvalidToken)
		return false
	}

	c.Set(ClaimsKey, claims)
	c.Set(CustomerIDKey, claims.CustomerID)
	return true
}

func abortUnauthorized(c *gin.Context, key string) {
	abortWithError(c, http.StatusUnauthorized, key)
}

// GetClaims returns the verified claims, or nil for anonymous requests.
func GetClaims(c *gin.Context) *dto.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetCustomerID returns the authenticated customer id, or "".
func GetCustomerID(c *gin.Context) string {
	return c.GetString(CustomerIDKey)
}
