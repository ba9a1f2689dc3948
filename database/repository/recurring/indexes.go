// File: database/repository/recurring/indexes.go
package recurringRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the compound scope index used by every list query.
func (r *mongoRecurringRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "year", Value: 1},
			{Key: "month", Value: 1},
			{Key: "dayOfWeek", Value: 1},
			{Key: "startTime", Value: 1},
		}},
		{Keys: bson.D{{Key: "id", Value: 1}}},
	})
	return err
}
