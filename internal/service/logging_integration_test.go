//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/guttosm/cart-pricing-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService_Integration(t *testing.T) {
	ctx := context.Background()

	mongo, err := testutil.StartMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongo.Terminate(ctx) })

	db, err := repository.NewMongoDB(mongo.URI, testutil.DatabaseName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })
	require.NoError(t, db.SetLogsTTL(ctx, 7*24*time.Hour))

	svc := NewLoggingService(repository.NewLogsRepository(db))

	batch := make([]*model.LogEntry, 0, 60)
	for i := 0; i < 60; i++ {
		entry := &model.LogEntry{Level: "info", Message: "HTTP request", Method: "POST", Path: "/api/shipping/quote"}
		if i%10 == 0 {
			entry.Path = "/api/sessions/s-7/checkout"
			entry.ActionType = "checkout"
			entry.WithField("session_id", "s-7")
		}
		batch = append(batch, entry)
	}
	require.NoError(t, svc.CreateLogs(ctx, append(batch, nil)))
	for _, entry := range batch {
		assert.False(t, entry.ID.IsZero())
	}

	single := &model.LogEntry{Level: "error", Message: "Tariff update failed", ActionType: "update_tariff"}
	require.NoError(t, svc.CreateLog(ctx, single))

	t.Run("default page size", func(t *testing.T) {
		entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{})
		require.NoError(t, err)
		assert.Len(t, entries, DefaultLogQueryLimit)

		total, err := svc.CountLogs(ctx, model.LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(61), total)
	})

	t.Run("session history", func(t *testing.T) {
		entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{SessionID: "s-7", ActionType: "checkout"})
		require.NoError(t, err)
		assert.Len(t, entries, 6)
		for _, e := range entries {
			assert.Equal(t, "s-7", e.Fields["session_id"])
		}
	})

	t.Run("time window", func(t *testing.T) {
		from := single.Timestamp.Add(-time.Millisecond)
		entries, err := svc.QueryLogs(ctx, model.LogQueryOptions{StartTime: &from, Level: "error"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, single.ID, entries[0].ID)
	})

	t.Run("invalid query never reaches mongo", func(t *testing.T) {
		from := time.Now()
		to := from.Add(-time.Hour)
		_, err := svc.QueryLogs(ctx, model.LogQueryOptions{StartTime: &from, EndTime: &to})
		assert.ErrorIs(t, err, ErrInvalidLogQuery)
	})
}
