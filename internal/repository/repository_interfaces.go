package repository

import (
	"context"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
)

// TariffsRepositoryInterface defines the interface for tariff version storage.
type TariffsRepositoryInterface interface {
	GetActive(ctx context.Context) (*TariffDocument, error)
	Create(ctx context.Context, tariff model.Tariff, createdBy string) (*TariffDocument, error)
	List(ctx context.Context, limit int) ([]TariffDocument, error)
}

// LogsRepositoryInterface stores and searches request and audit log entries.
type LogsRepositoryInterface interface {
	Insert(ctx context.Context, entries ...*model.LogEntry) error
	Query(ctx context.Context, q model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, q model.LogQueryOptions) (int64, error)
}
