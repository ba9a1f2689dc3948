// File: database/repository/recurring/interface.go
package recurringRepo

import (
	"context"

	"clinicdesk/database"
	"clinicdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecurringRepository is the recurring-schedule store. Its only write
// primitives are single-row inserts and updates; there is no compound replace,
// which is why the bulk mutator issues sequential calls against it.
type RecurringRepository interface {
	ListByScope(ctx context.Context, year, month int, dayOfWeek *int) ([]models.RecurringEntry, error)
	GetByID(ctx context.Context, id string) (*models.RecurringEntry, error)
	Insert(ctx context.Context, entry models.RecurringEntry) (string, error)
	Update(ctx context.Context, id string, patch models.RecurringPatch) error
	Delete(ctx context.Context, id string) error
}

type mongoRecurringRepo struct {
	coll *mongo.Collection
}

// NewMongoRecurringRepo constructs a new MongoDB RecurringRepository.
func NewMongoRecurringRepo() RecurringRepository {
	db := database.MongoClient.Database("clinicdesk")
	return &mongoRecurringRepo{
		coll: db.Collection("recurring_schedules"),
	}
}
