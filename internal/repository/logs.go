package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogsRepository stores request and audit log entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a logs repository on db's logs collection.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Insert stores entries, assigning IDs and timestamps to those without.
// Batches are unordered so one bad entry does not drop the rest.
func (r *LogsRepository) Insert(ctx context.Context, entries ...*model.LogEntry) error {
	switch len(entries) {
	case 0:
		return nil
	case 1:
		stamp(entries[0])
		_, err := r.collection.InsertOne(ctx, entries[0])
		return err
	}

	docs := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		stamp(entry)
		docs = append(docs, entry)
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func stamp(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
}

// Query returns entries matching q, newest first.
func (r *LogsRepository) Query(ctx context.Context, q model.LogQueryOptions) ([]model.LogEntry, error) {
	find := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	if q.Limit > 0 {
		find.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		find.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, logFilter(q), find)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := []model.LogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns how many entries match q, ignoring Limit and Skip.
func (r *LogsRepository) Count(ctx context.Context, q model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, logFilter(q))
}

// logFilter builds the Mongo filter for q. Path matches as a literal prefix.
func logFilter(q model.LogQueryOptions) bson.D {
	filter := bson.D{}
	equal := func(field, value string) {
		if value != "" {
			filter = append(filter, bson.E{Key: field, Value: value})
		}
	}
	equal("request_id", q.RequestID)
	equal("customer_id", q.CustomerID)
	equal("fields.session_id", q.SessionID)
	equal("action_type", q.ActionType)
	equal("level", q.Level)
	equal("method", q.Method)

	if q.Path != "" {
		filter = append(filter, bson.E{Key: "path", Value: primitive.Regex{Pattern: "^" + regexp.QuoteMeta(q.Path)}})
	}

	if q.StartTime != nil || q.EndTime != nil {
		window := bson.D{}
		if q.StartTime != nil {
			window = append(window, bson.E{Key: "$gte", Value: *q.StartTime})
		}
		if q.EndTime != nil {
			window = append(window, bson.E{Key: "$lte", Value: *q.EndTime})
		}
		filter = append(filter, bson.E{Key: "timestamp", Value: window})
	}
	return filter
}
