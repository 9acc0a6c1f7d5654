//go:build integration

package circuitbreaker_test

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCircuitBreaker_MongoOutage stops the database under a running tariff
// service and checks quoting falls back to the built-in tariff.
func TestCircuitBreaker_MongoOutage(t *testing.T) {
	ctx := context.Background()

	mongo, err := testutil.StartMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongo.Terminate(ctx) })

	db, err := repository.NewMongoDBWithConfig(mongo.URI, testutil.DatabaseName(t.Name()), outageMongoConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })

	tariffsCB := circuitbreaker.New(circuitbreaker.Config{
		Name:             "tariffs-outage",
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
	})
	logsCB := circuitbreaker.New(circuitbreaker.Config{
		Name:             "logs-outage",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
	})
	tariffs := repository.NewTariffsRepositoryWithCircuitBreaker(repository.NewTariffsRepository(db), tariffsCB)
	logs := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	svc := service.NewTariffService(tariffs, nil)

	custom := pricing.DefaultTariff()
	custom.Zones["3"] = model.NewZoneRate(25, 2)
	stored, err := svc.Create(ctx, custom, "ops")
	require.NoError(t, err)
	require.NoError(t, logs.Insert(ctx, &model.LogEntry{Level: "info", Message: "tariff updated"}))

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.Version, active.Version)

	require.NoError(t, mongo.Terminate(ctx))

	for i := 0; i < 2; i++ {
		_, err := svc.Active(ctx)
		assert.Error(t, err, "failure %d reaches the caller while the circuit is closed", i+1)
	}
	require.True(t, tariffsCB.IsOpen())
	assert.False(t, tariffsCB.GetStats().IsHealthy)

	active, err = svc.Active(ctx)
	require.NoError(t, err, "open circuit reads as no stored tariff")
	assert.Zero(t, active.Version)
	assert.True(t, active.Zones["3"].Base.Equal(pricing.DefaultTariff().Zones["3"].Base))

	_, err = svc.Create(ctx, custom, "ops")
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	assert.Error(t, logs.Insert(ctx, &model.LogEntry{Message: "first failure"}))
	assert.NoError(t, logs.Insert(ctx, &model.LogEntry{Message: "dropped"}), "log writes are dropped once open")
}

func outageMongoConfig() repository.MongoConfig {
	cfg := repository.DefaultMongoConfig()
	cfg.ServerSelectionTimeout = 500 * time.Millisecond
	cfg.SocketTimeout = time.Second
	return cfg
}
