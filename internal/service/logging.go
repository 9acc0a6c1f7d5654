package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/repository"
)

// Log query paging bounds.
const (
	DefaultLogQueryLimit = 50
	MaxLogQueryLimit     = 500
)

// ErrInvalidLogQuery reports a log search that cannot be run as given.
var ErrInvalidLogQuery = errors.New("invalid log query")

// LoggingService persists and searches request and audit log entries.
type LoggingService interface {
	// CreateLog stores a single entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores a batch of entries.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs returns a page of matching entries, newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs returns the number of matching entries across all pages.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl is the MongoDB-backed LoggingService.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a LoggingService over repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if entry == nil {
		return nil
	}
	return s.repo.Insert(ctx, entry)
}

// CreateLogs skips nil entries and does nothing for an empty batch.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			batch = append(batch, entry)
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.Insert(ctx, batch...)
}

func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	q, err := NormalizeLogQuery(opts)
	if err != nil {
		return nil, err
	}
	return s.repo.Query(ctx, q)
}

func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	q, err := NormalizeLogQuery(opts)
	if err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, q)
}

// NormalizeLogQuery applies paging defaults and rejects inverted time windows.
// A zero limit means DefaultLogQueryLimit; larger limits are capped at MaxLogQueryLimit.
func NormalizeLogQuery(q model.LogQueryOptions) (model.LogQueryOptions, error) {
	if q.Limit < 0 || q.Skip < 0 {
		return q, fmt.Errorf("%w: limit and skip must not be negative", ErrInvalidLogQuery)
	}
	if q.StartTime != nil && q.EndTime != nil && q.EndTime.Before(*q.StartTime) {
		return q, fmt.Errorf("%w: end time is before start time", ErrInvalidLogQuery)
	}
	switch {
	case q.Limit == 0:
		q.Limit = DefaultLogQueryLimit
	case q.Limit > MaxLogQueryLimit:
		q.Limit = MaxLogQueryLimit
	}
	return q, nil
}
