package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/repository"
)

const progressCollection = "progress_entries"

// mongoProgressRepository implements repository.ProgressRepository.
type mongoProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoProgressRepository creates a new instance backed by the given database.
func NewMongoProgressRepository(db *mongo.Database) repository.ProgressRepository {
	return &mongoProgressRepository{
		collection: db.Collection(progressCollection),
	}
}

// Upsert writes the entry, replacing any existing entry for the same day.
func (r *mongoProgressRepository) Upsert(ctx context.Context, entry *domain.ProgressEntry) error {
	filter := bson.M{"userId": entry.UserID, "date": entry.Date}
	_, err := r.collection.ReplaceOne(ctx, filter, entry, options.Replace().SetUpsert(true))
	return err
}

// ListByUser returns all entries for a user in chronological order.
func (r *mongoProgressRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.ProgressEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureProgressIndexes creates the (userId, date) index for weight entries.
func EnsureProgressIndexes(ctx context.Context, collection *mongo.Collection) {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = collection.Indexes().CreateOne(ctx, index)
}
