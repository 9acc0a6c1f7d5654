// Package middleware provides role-based authorization middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
)

// RoleAdmin is the claim role allowed to publish tariffs.
const RoleAdmin = "admin"

// RequireRole returns a middleware that allows requests whose claims carry any of roles.
// It must run after JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, role := range roles {
			if claims.HasRole(role) {
				c.Next()
				return
			}
		}

		abortWithError(c, http.StatusForbidden, i18n.ErrKeyForbidden)
	}
}
