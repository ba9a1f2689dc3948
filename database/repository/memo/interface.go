// File: database/repository/memo/interface.go
package memoRepo

import (
	"context"

	"clinicdesk/database"
	"clinicdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MemoRepository stores per-date free-text memos. Display only; resolution
// never consults it.
type MemoRepository interface {
	GetByDate(ctx context.Context, date string) (*models.DailyMemo, error)
	Upsert(ctx context.Context, date, memo string) error
	DeleteByDate(ctx context.Context, date string) error
}

type mongoMemoRepo struct {
	coll *mongo.Collection
}

// NewMongoMemoRepo constructs a new MongoDB MemoRepository.
func NewMongoMemoRepo() MemoRepository {
	db := database.MongoClient.Database("clinicdesk")
	return &mongoMemoRepo{
		coll: db.Collection("daily_memos"),
	}
}
