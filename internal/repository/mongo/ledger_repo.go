package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/repository"
)

const (
	marksCollection          = "consumption_marks"
	dailyNutritionCollection = "daily_nutrition"
	dailyWorkoutCollection   = "daily_workouts"
)

// mongoLedgerRepository implements repository.LedgerRepository. Every write
// is a whole-document replace keyed by (userId, date); the derived snapshots
// are never patched field by field.
type mongoLedgerRepository struct {
	marks     *mongo.Collection
	nutrition *mongo.Collection
	workouts  *mongo.Collection
}

// NewMongoLedgerRepository creates a new instance backed by the given database.
func NewMongoLedgerRepository(db *mongo.Database) repository.LedgerRepository {
	return &mongoLedgerRepository{
		marks:     db.Collection(marksCollection),
		nutrition: db.Collection(dailyNutritionCollection),
		workouts:  db.Collection(dailyWorkoutCollection),
	}
}

func (r *mongoLedgerRepository) GetMarks(ctx context.Context, userID primitive.ObjectID, date string) (*domain.ConsumptionMarks, error) {
	var marks domain.ConsumptionMarks
	err := r.marks.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&marks)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &marks, nil
}

func (r *mongoLedgerRepository) SaveMarks(ctx context.Context, marks *domain.ConsumptionMarks) error {
	filter := bson.M{"userId": marks.UserID, "date": marks.Date}
	_, err := r.marks.ReplaceOne(ctx, filter, marks, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoLedgerRepository) GetNutrition(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyNutritionRecord, error) {
	var rec domain.DailyNutritionRecord
	err := r.nutrition.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *mongoLedgerRepository) SaveNutrition(ctx context.Context, rec *domain.DailyNutritionRecord) error {
	filter := bson.M{"userId": rec.UserID, "date": rec.Date}
	_, err := r.nutrition.ReplaceOne(ctx, filter, rec, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoLedgerRepository) GetWorkout(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyWorkoutRecord, error) {
	var rec domain.DailyWorkoutRecord
	err := r.workouts.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *mongoLedgerRepository) SaveWorkout(ctx context.Context, rec *domain.DailyWorkoutRecord) error {
	filter := bson.M{"userId": rec.UserID, "date": rec.Date}
	_, err := r.workouts.ReplaceOne(ctx, filter, rec, options.Replace().SetUpsert(true))
	return err
}

// EnsureLedgerIndexes creates the (userId, date) lookup indexes for marks
// and daily snapshots.
func EnsureLedgerIndexes(ctx context.Context, db *mongo.Database) {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = db.Collection(marksCollection).Indexes().CreateOne(ctx, index)
	_, _ = db.Collection(dailyNutritionCollection).Indexes().CreateOne(ctx, index)
	_, _ = db.Collection(dailyWorkoutCollection).Indexes().CreateOne(ctx, index)
}
