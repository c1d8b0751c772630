package repository

import (
	"context"
	"fmt"
	"time"

	"exercise_tracker/internal/domain/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExerciseRepository interface {
	Create(ctx context.Context, entry *model.Exercise) error
	FindByCreator(ctx context.Context, creator primitive.ObjectID, from, to time.Time, limit int64) ([]model.Exercise, error)
}

type mongoExerciseRepository struct {
	coll *mongo.Collection
}

func NewMongoExerciseRepository(coll *mongo.Collection) ExerciseRepository {
	return &mongoExerciseRepository{coll: coll}
}

func (r *mongoExerciseRepository) Create(ctx context.Context, entry *model.Exercise) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("mongoExerciseRepository.Create: %w", err)
	}
	return nil
}

// FindByCreator returns a creator's entries with date in [from, to] inclusive,
// in insertion order, capped to limit when limit > 0. The id and creator
// fields are projected away; callers only see description, duration and date.
func (r *mongoExerciseRepository) FindByCreator(ctx context.Context, creator primitive.ObjectID, from, to time.Time, limit int64) ([]model.Exercise, error) {
	filter := bson.M{
		"creator": creator,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 0, "description": 1, "duration": 1, "date": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongoExerciseRepository.FindByCreator: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []model.Exercise{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("mongoExerciseRepository.FindByCreator: %w", err)
	}
	return entries, nil
}
