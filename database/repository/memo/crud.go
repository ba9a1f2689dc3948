// File: database/repository/memo/crud.go
package memoRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicdesk/models"
)

func (r *mongoMemoRepo) GetByDate(ctx context.Context, date string) (*models.DailyMemo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var memo models.DailyMemo
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&memo)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *mongoMemoRepo) Upsert(ctx context.Context, date, memo string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":      date,
		"memo":      memo,
		"updatedAt": time.Now(),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"date": date}, update,
		options.Update().SetUpsert(true))
	return err
}

func (r *mongoMemoRepo) DeleteByDate(ctx context.Context, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
