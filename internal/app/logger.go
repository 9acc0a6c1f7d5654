package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/logger"
	"github.com/rs/zerolog"
)

// InitializeLogger configures zerolog and keeps gin's own route and
// request printing quiet unless the service logs at debug level.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
