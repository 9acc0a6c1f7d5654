// Package main is the entry point for the cart-pricing-service application.
//
// @title           Cart Pricing Service API
// @version         1.0.0
// @description     Cart pricing and shipping estimates for the storefront.
//
//	Prices carts in Brazilian reais, estimates delivery fees by postal code zone
//	and keeps per-visitor cart sessions up to the checkout handoff.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cart-pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Storefront customer token: "Bearer {token}". Required for tariff updates when token verification is enabled.
//
// @tag.name        Pricing
// @tag.description Stateless cart pricing and shipping estimates
//
// @tag.name        Sessions
// @tag.description Cart sessions from cart edits to checkout handoff
//
// @tag.name        Tariffs
// @tag.description Shipping tariff versions
//
// @tag.name        Health
// @tag.description Health check endpoints
//
// @tag.name        Admin
// @tag.description Request and audit log search
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/cart-pricing-service/docs" // swagger docs

	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server)
	server.OnShutdown(cleanup)

	if err := server.Run(ctx); err != nil {
		cleanup()
		log.Fatal().Err(err).Msg("Server error")
	}
}
