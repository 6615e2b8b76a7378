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
	generatedMealPlanCollection = "meal_plans"
	manualMealPlanCollection    = "manual_meal_plans"
)

// mongoMealPlanRepository implements repository.MealPlanRepository.
type mongoMealPlanRepository struct {
	generated *mongo.Collection
	manual    *mongo.Collection
}

// NewMongoMealPlanRepository creates a new instance backed by the given database.
func NewMongoMealPlanRepository(db *mongo.Database) repository.MealPlanRepository {
	return &mongoMealPlanRepository{
		generated: db.Collection(generatedMealPlanCollection),
		manual:    db.Collection(manualMealPlanCollection),
	}
}

func (r *mongoMealPlanRepository) GetGenerated(ctx context.Context, userID primitive.ObjectID, date string) (*domain.GeneratedMealPlan, error) {
	var plan domain.GeneratedMealPlan
	err := r.generated.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// SaveGenerated replaces the day's plan wholesale; regeneration overwrites
// whatever was stored before.
func (r *mongoMealPlanRepository) SaveGenerated(ctx context.Context, plan *domain.GeneratedMealPlan) error {
	filter := bson.M{"userId": plan.UserID, "date": plan.Date}
	_, err := r.generated.ReplaceOne(ctx, filter, plan, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoMealPlanRepository) GetManual(ctx context.Context, userID primitive.ObjectID, date string) (*domain.ManualMealPlan, error) {
	var plan domain.ManualMealPlan
	err := r.manual.FindOne(ctx, bson.M{"userId": userID, "date": date}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *mongoMealPlanRepository) SaveManual(ctx context.Context, plan *domain.ManualMealPlan) error {
	filter := bson.M{"userId": plan.UserID, "date": plan.Date}
	_, err := r.manual.ReplaceOne(ctx, filter, plan, options.Replace().SetUpsert(true))
	return err
}

// EnsureMealPlanIndexes creates the (userId, date) lookup indexes for both
// plan collections.
func EnsureMealPlanIndexes(ctx context.Context, db *mongo.Database) {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = db.Collection(generatedMealPlanCollection).Indexes().CreateOne(ctx, index)
	_, _ = db.Collection(manualMealPlanCollection).Indexes().CreateOne(ctx, index)
}
