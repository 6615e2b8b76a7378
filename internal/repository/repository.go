package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vitaplan/fitness-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// MealPlanRepository stores the per-(user, date) AI and manual meal plans.
// Absence of a record is reported as ErrNotFound and callers treat it as
// "empty", never as a failure. Saves replace the whole document.
type MealPlanRepository interface {
	GetGenerated(ctx context.Context, userID primitive.ObjectID, date string) (*domain.GeneratedMealPlan, error)
	SaveGenerated(ctx context.Context, plan *domain.GeneratedMealPlan) error
	GetManual(ctx context.Context, userID primitive.ObjectID, date string) (*domain.ManualMealPlan, error)
	SaveManual(ctx context.Context, plan *domain.ManualMealPlan) error
}

// WorkoutRepository stores AI workout plans and the per-day log of
// completed exercises.
type WorkoutRepository interface {
	GetGenerated(ctx context.Context, userID primitive.ObjectID, date string) (*domain.GeneratedWorkoutPlan, error)
	SaveGenerated(ctx context.Context, plan *domain.GeneratedWorkoutPlan) error
	GetLog(ctx context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutLog, error)
	SaveLog(ctx context.Context, log *domain.WorkoutLog) error
}

// LedgerRepository stores consumption marks and the derived daily snapshots.
// Mark and snapshot writes are separate whole-document replaces; there is no
// cross-key atomicity and a single writer is assumed.
type LedgerRepository interface {
	GetMarks(ctx context.Context, userID primitive.ObjectID, date string) (*domain.ConsumptionMarks, error)
	SaveMarks(ctx context.Context, marks *domain.ConsumptionMarks) error
	GetNutrition(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyNutritionRecord, error)
	SaveNutrition(ctx context.Context, rec *domain.DailyNutritionRecord) error
	GetWorkout(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyWorkoutRecord, error)
	SaveWorkout(ctx context.Context, rec *domain.DailyWorkoutRecord) error
}

// ProgressRepository stores body-weight entries, one per (user, date).
type ProgressRepository interface {
	Upsert(ctx context.Context, entry *domain.ProgressEntry) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
}
