// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/http"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup stops background workers and closes the database; call it after the server stops.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	InitializeLogger(cfg.Log)

	serviceComponents := InitializeServices(cfg)

	// Nil when MongoDB is disabled or unreachable; tariffs then come from code defaults.
	dbComponents := InitializeDatabase(cfg.Database)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	cleanup := func() {
		middleware.StopAsyncLogger()
		serviceComponents.Close()
		dbComponents.Close()
	}

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), cleanup
}
