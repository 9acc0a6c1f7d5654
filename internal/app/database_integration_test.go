//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationDatabaseConfig(uri, dbName string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URI:                            uri,
		DatabaseName:                   dbName,
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := testutil.SharedMongoURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(uri, testutil.DatabaseName(t.Name())))
		require.NotNil(t, components)
		defer components.Close()

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.TariffsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NoError(t, components.DB.HealthCheck(ctx))
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, InitializeDatabase(config.DatabaseConfig{Enabled: false}))
	})

	t.Run("no tariff is seeded", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(uri, testutil.DatabaseName(t.Name())))
		require.NotNil(t, components)
		defer components.Close()

		active, err := components.TariffsRepo.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("stored tariff is loaded at router initialization", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(integrationDatabaseConfig(uri, testutil.DatabaseName(t.Name())))
		require.NotNil(t, components)
		defer components.Close()

		_, err := components.TariffsRepo.Create(ctx, pricing.DefaultTariff(), "seed")
		require.NoError(t, err)

		services := InitializeServices(config.Config{})
		defer services.Close()

		InitializeRouter(services, components, config.Config{})
		assert.Equal(t, 1, services.Calculator.Tariff().Version)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		cfg := integrationDatabaseConfig(uri, testutil.DatabaseName(t.Name()))
		cfg.CircuitBreakerFailureThreshold = 2
		cfg.CircuitBreakerSuccessThreshold = 1
		cfg.CircuitBreakerTimeout = 100 * time.Millisecond

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)
		defer components.Close()

		stats := components.TariffsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)

		logsStats := components.LogsCircuitBreaker.GetStats()
		assert.Equal(t, "closed", logsStats.State)
		assert.True(t, logsStats.IsHealthy)
	})
}
