package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into the standard error
// envelope when the handler did not write a response itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		log := logger.Logger()
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("errors", len(c.Errors)).
			Err(last.Err).
			Msg("Request failed")

		if c.Writer.Written() {
			return
		}
		status, key := classifyError(last)
		abortWithError(c, status, key)
	}
}

func classifyError(err *gin.Error) (status int, messageKey string) {
	switch {
	case err.IsType(gin.ErrorTypeBind):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody
	case errors.Is(err.Err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

// abortWithError writes the localized error envelope and stops the chain.
// The error code follows from the status.
func abortWithError(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, message, GetRequestID(c)))
}
