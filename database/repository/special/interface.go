// File: database/repository/special/interface.go
package specialRepo

import (
	"context"

	"clinicdesk/database"
	"clinicdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SpecialRepository is the single-date override store. The store may hold
// several rows for the same date; FirstByDate resolves them deterministically
// by creation order so the resolver always consults one.
type SpecialRepository interface {
	ListByRange(ctx context.Context, from, to string) ([]models.SpecialEntry, error)
	FirstByDate(ctx context.Context, date string) (*models.SpecialEntry, error)
	Insert(ctx context.Context, entry models.SpecialEntry) (string, error)
	UpdateAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
	DeleteByDate(ctx context.Context, date string) (int64, error)
}

type mongoSpecialRepo struct {
	coll *mongo.Collection
}

// NewMongoSpecialRepo constructs a new MongoDB SpecialRepository.
func NewMongoSpecialRepo() SpecialRepository {
	db := database.MongoClient.Database("clinicdesk")
	return &mongoSpecialRepo{
		coll: db.Collection("special_schedules"),
	}
}
