package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/planner"
	"vitaplan/fitness-planner/internal/repository"
)

// In-memory repository fakes keyed by userID+date.

func key(userID primitive.ObjectID, date string) string {
	return userID.Hex() + "/" + date
}

type fakeMealPlanRepo struct {
	generated map[string]*domain.GeneratedMealPlan
	manual    map[string]*domain.ManualMealPlan
}

func newFakeMealPlanRepo() *fakeMealPlanRepo {
	return &fakeMealPlanRepo{
		generated: make(map[string]*domain.GeneratedMealPlan),
		manual:    make(map[string]*domain.ManualMealPlan),
	}
}

func (r *fakeMealPlanRepo) GetGenerated(_ context.Context, userID primitive.ObjectID, date string) (*domain.GeneratedMealPlan, error) {
	if plan, ok := r.generated[key(userID, date)]; ok {
		return plan, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMealPlanRepo) SaveGenerated(_ context.Context, plan *domain.GeneratedMealPlan) error {
	r.generated[key(plan.UserID, plan.Date)] = plan
	return nil
}

func (r *fakeMealPlanRepo) GetManual(_ context.Context, userID primitive.ObjectID, date string) (*domain.ManualMealPlan, error) {
	if plan, ok := r.manual[key(userID, date)]; ok {
		return plan, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMealPlanRepo) SaveManual(_ context.Context, plan *domain.ManualMealPlan) error {
	r.manual[key(plan.UserID, plan.Date)] = plan
	return nil
}

type fakeWorkoutRepo struct {
	plans map[string]*domain.GeneratedWorkoutPlan
	logs  map[string]*domain.WorkoutLog
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{
		plans: make(map[string]*domain.GeneratedWorkoutPlan),
		logs:  make(map[string]*domain.WorkoutLog),
	}
}

func (r *fakeWorkoutRepo) GetGenerated(_ context.Context, userID primitive.ObjectID, date string) (*domain.GeneratedWorkoutPlan, error) {
	if plan, ok := r.plans[key(userID, date)]; ok {
		return plan, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) SaveGenerated(_ context.Context, plan *domain.GeneratedWorkoutPlan) error {
	r.plans[key(plan.UserID, plan.Date)] = plan
	return nil
}

func (r *fakeWorkoutRepo) GetLog(_ context.Context, userID primitive.ObjectID, date string) (*domain.WorkoutLog, error) {
	if log, ok := r.logs[key(userID, date)]; ok {
		return log, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) SaveLog(_ context.Context, log *domain.WorkoutLog) error {
	r.logs[key(log.UserID, log.Date)] = log
	return nil
}

type fakeLedgerRepo struct {
	marks     map[string]*domain.ConsumptionMarks
	nutrition map[string]*domain.DailyNutritionRecord
	workouts  map[string]*domain.DailyWorkoutRecord
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{
		marks:     make(map[string]*domain.ConsumptionMarks),
		nutrition: make(map[string]*domain.DailyNutritionRecord),
		workouts:  make(map[string]*domain.DailyWorkoutRecord),
	}
}

func (r *fakeLedgerRepo) GetMarks(_ context.Context, userID primitive.ObjectID, date string) (*domain.ConsumptionMarks, error) {
	if m, ok := r.marks[key(userID, date)]; ok {
		return m, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeLedgerRepo) SaveMarks(_ context.Context, marks *domain.ConsumptionMarks) error {
	r.marks[key(marks.UserID, marks.Date)] = marks
	return nil
}

func (r *fakeLedgerRepo) GetNutrition(_ context.Context, userID primitive.ObjectID, date string) (*domain.DailyNutritionRecord, error) {
	if rec, ok := r.nutrition[key(userID, date)]; ok {
		return rec, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeLedgerRepo) SaveNutrition(_ context.Context, rec *domain.DailyNutritionRecord) error {
	r.nutrition[key(rec.UserID, rec.Date)] = rec
	return nil
}

func (r *fakeLedgerRepo) GetWorkout(_ context.Context, userID primitive.ObjectID, date string) (*domain.DailyWorkoutRecord, error) {
	if rec, ok := r.workouts[key(userID, date)]; ok {
		return rec, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeLedgerRepo) SaveWorkout(_ context.Context, rec *domain.DailyWorkoutRecord) error {
	r.workouts[key(rec.UserID, rec.Date)] = rec
	return nil
}

// fakeGenerator returns canned payloads, or errors when failing is set.
type fakeGenerator struct {
	failing bool
	meal    planner.MealPlanPayload
	workout planner.WorkoutPlanPayload
	calls   int
}

func (g *fakeGenerator) MealPlan(_ context.Context, _ *domain.User, _ string) (planner.MealPlanPayload, error) {
	g.calls++
	if g.failing {
		return planner.MealPlanPayload{}, errors.New("model unavailable")
	}
	return g.meal, nil
}

func (g *fakeGenerator) WorkoutPlan(_ context.Context, _ *domain.User, _ string) (planner.WorkoutPlanPayload, error) {
	g.calls++
	if g.failing {
		return planner.WorkoutPlanPayload{}, errors.New("model unavailable")
	}
	return g.workout, nil
}

func testUser() *domain.User {
	return &domain.User{
		ID:            primitive.NewObjectID(),
		Name:          "Test User",
		Email:         "test@example.com",
		WeightKg:      70,
		HeightCm:      175,
		Age:           25,
		Gender:        domain.GenderMale,
		ActivityLevel: domain.ActivityModerate,
		Goal:          domain.GoalMuscleGain,
		DailyCalories: 2000,
		ProteinTarget: 150,
		CarbsTarget:   200,
		FatTarget:     67,
		PlanMode:      domain.PlanModeAI,
	}
}
