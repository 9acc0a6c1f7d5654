package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys against bcrypt hashes.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If keyHashes is empty, authentication is disabled.
func APIKeyAuth(keyHashes []string) gin.HandlerFunc {
	hashes := make([][]byte, 0, len(keyHashes))
	for _, h := range keyHashes {
		if h != "" {
			hashes = append(hashes, []byte(h))
		}
	}

	return func(c *gin.Context) {
		if len(hashes) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
		case !matchesAnyHash(hashes, key):
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

func matchesAnyHash(hashes [][]byte, key string) bool {
	for _, h := range hashes {
		if bcrypt.CompareHashAndPassword(h, []byte(key)) == nil {
			return true
		}
	}
	return false
}
