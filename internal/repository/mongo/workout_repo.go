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
	workoutPlanCollection = "workout_plans"
	workoutLogCollection  = "workout_logs"
)

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	plans *mongo.Collection
	logs  *mongo.Collection
}

// NewMongoWorkoutRepository creates a new instance backed by the given database.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		plans: db.Collection(workoutPlanCollection),
		logs:  db.Collection(workoutLogCollection),
	}
}

func (r *mongoWorkoutRepository) GetGenerated(ctx context.Context, userID primitive.ObjectID, date string) (*domain.GeneratedWorkoutPlan, error) {
	var plan domain.GeneratedWorkoutPlan
	err := r.plans.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoWorkoutRepository) SaveGenerated(ctx context.Context, plan *domain.GeneratedWorkoutPlan) error {
	filter := bson.M{"userId": plan.UserID, "date": plan.Date}
	_, err := r.plans.ReplaceOne(ctx, filter, plan, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoWorkoutRepository) GetLog(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutLog, error) {
	var log domain.WorkoutLog
	err := r.logs.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *mongoWorkoutRepository) SaveLog(ctx context.Context, log *domain.WorkoutLog) error {
	filter := bson.M{"userId": log.UserID, "date": log.Date}
	_, err := r.logs.ReplaceOne(ctx, filter, log, options.Replace().SetUpsert(true))
	return err
}

// EnsureWorkoutIndexes creates the (userId, date) lookup indexes for workout
// plans and logs.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = db.Collection(workoutPlanCollection).Indexes().CreateOne(ctx, index)
	_, _ = db.Collection(workoutLogCollection).Indexes().CreateOne(ctx, index)
}
