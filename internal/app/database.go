// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cart-pricing-service/config"
	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	TariffsRepo           repository.TariffsRepositoryInterface
	LoggingService        service.LoggingService
	TariffsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with the built-in tariff")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Dur("ttl", cfg.LogsTTL).Msg("Failed to apply logs TTL index")
	}

	tariffsCB := newCircuitBreaker(cfg, "mongodb-tariffs")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	tariffsRepo := repository.NewTariffsRepositoryWithCircuitBreaker(repository.NewTariffsRepository(db), tariffsCB)

	return &DatabaseComponents{
		DB:                    db,
		TariffsRepo:           tariffsRepo,
		LoggingService:        service.NewLoggingService(logsRepo),
		TariffsCircuitBreaker: tariffsCB,
		LogsCircuitBreaker:    logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// loadActiveTariff pushes the stored active tariff into the calculator.
// Failure is not fatal: quotes keep using the built-in tariff.
func loadActiveTariff(tariffs service.TariffService) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tariff, err := tariffs.Refresh(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load active tariff - using built-in tariff")
		return
	}
	log.Info().Int("tariff_version", tariff.Version).Msg("Active tariff loaded")
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
