//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLogs(t *testing.T, repo *LogsRepository, base time.Time) {
	t.Helper()
	checkout := &model.LogEntry{
		Timestamp:  base.Add(3 * time.Minute),
		Level:      "info",
		Message:    "Checkout handoff prepared",
		RequestID:  "req-checkout",
		Method:     "POST",
		Path:       "/api/sessions/s-1/checkout",
		StatusCode: 200,
		CustomerID: "cust-42",
		ActionType: "checkout",
	}
	checkout.WithField("session_id", "s-1")

	require.NoError(t, repo.Insert(context.Background(), checkout))
	require.NoError(t, repo.Insert(context.Background(),
		&model.LogEntry{Timestamp: base, Level: "info", Message: "HTTP request", RequestID: "req-quote", Method: "POST", Path: "/api/shipping/quote", StatusCode: 200},
		&model.LogEntry{Timestamp: base.Add(time.Minute), Level: "warn", Message: "HTTP request", RequestID: "req-pending", Method: "POST", Path: "/api/sessions/s-1/checkout", StatusCode: 422, CustomerID: "cust-42"},
		&model.LogEntry{Timestamp: base.Add(2 * time.Minute), Level: "error", Message: "HTTP request", RequestID: "req-tariff", Method: "PUT", Path: "/api/tariffs", StatusCode: 503},
	))
}

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))

	repo := NewLogsRepository(db)
	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedLogs(t, repo, base)
	afterFirst := base.Add(30 * time.Second)

	tests := []struct {
		name        string
		query       model.LogQueryOptions
		wantIDs     []string
		wantMatches int64
	}{
		{
			name:        "all, newest first",
			wantIDs:     []string{"req-checkout", "req-tariff", "req-pending", "req-quote"},
			wantMatches: 4,
		},
		{
			name:        "by session",
			query:       model.LogQueryOptions{SessionID: "s-1"},
			wantIDs:     []string{"req-checkout"},
			wantMatches: 1,
		},
		{
			name:        "by customer",
			query:       model.LogQueryOptions{CustomerID: "cust-42"},
			wantIDs:     []string{"req-checkout", "req-pending"},
			wantMatches: 2,
		},
		{
			name:        "by path prefix",
			query:       model.LogQueryOptions{Path: "/api/sessions/"},
			wantIDs:     []string{"req-checkout", "req-pending"},
			wantMatches: 2,
		},
		{
			name:        "by level and method",
			query:       model.LogQueryOptions{Level: "error", Method: "PUT"},
			wantIDs:     []string{"req-tariff"},
			wantMatches: 1,
		},
		{
			name:        "time window with paging",
			query:       model.LogQueryOptions{StartTime: &afterFirst, Limit: 1, Skip: 1},
			wantIDs:     []string{"req-tariff"},
			wantMatches: 3,
		},
		{
			name:        "no match",
			query:       model.LogQueryOptions{ActionType: "update_tariff"},
			wantIDs:     []string{},
			wantMatches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.Query(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(entries))
			for _, e := range entries {
				ids = append(ids, e.RequestID)
			}
			assert.Equal(t, tt.wantIDs, ids)

			n, err := repo.Count(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatches, n)
		})
	}

	t.Run("fields round trip", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.LogQueryOptions{RequestID: "req-checkout"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "s-1", entries[0].Fields["session_id"])
		assert.False(t, entries[0].ID.IsZero())
		assert.True(t, base.Add(3*time.Minute).Equal(entries[0].Timestamp))
	})
}

func TestLogsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "logs-it",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
	})
	repo := NewLogsRepositoryWithCircuitBreaker(NewLogsRepository(db), cb)

	require.NoError(t, repo.Insert(ctx, &model.LogEntry{Level: "info", Message: "HTTP request"}))
	assert.True(t, cb.GetStats().IsHealthy)

	require.NoError(t, db.Close(ctx))

	err := repo.Insert(ctx, &model.LogEntry{Level: "info", Message: "after disconnect"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, circuitbreaker.ErrCircuitOpen))
	assert.True(t, cb.IsOpen())

	assert.NoError(t, repo.Insert(ctx, &model.LogEntry{Level: "info", Message: "dropped"}), "open circuit drops writes")
	_, err = repo.Count(ctx, model.LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
