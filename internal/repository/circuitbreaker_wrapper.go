package repository

import (
	"context"
	"errors"

	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
)

// TariffsRepositoryWithCircuitBreaker wraps a tariffs repository with circuit breaker protection.
type TariffsRepositoryWithCircuitBreaker struct {
	repo           TariffsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTariffsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTariffsRepositoryWithCircuitBreaker(repo TariffsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TariffsRepositoryWithCircuitBreaker {
	return &TariffsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active tariff. An open circuit reads as "no stored tariff"
// so callers fall back to the built-in one.
func (r *TariffsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*TariffDocument, error) {
	doc, err := circuitbreaker.Do(ctx, r.circuitBreaker, func() (*TariffDocument, error) {
		return r.repo.GetActive(ctx)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return doc, err
}

// Create stores a new tariff version.
func (r *TariffsRepositoryWithCircuitBreaker) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*TariffDocument, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (*TariffDocument, error) {
		return r.repo.Create(ctx, tariff, createdBy)
	})
}

// List returns tariff versions, newest first.
func (r *TariffsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]TariffDocument, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]TariffDocument, error) {
		return r.repo.List(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TariffsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores log entries. Entries are dropped while the circuit is open
// so request logging never waits on a failing database.
func (r *LogsRepositoryWithCircuitBreaker) Insert(ctx context.Context, entries ...*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, entries...)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query searches log entries.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, q model.LogQueryOptions) ([]model.LogEntry, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]model.LogEntry, error) {
		return r.repo.Query(ctx, q)
	})
}

// Count returns the number of matching log entries.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, q model.LogQueryOptions) (int64, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, q)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
