package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/planner"
	"vitaplan/fitness-planner/internal/repository"
)

var ErrEntryNotFound = errors.New("food entry not found")

// FoodInput carries a manual food entry as submitted by the user.
type FoodInput struct {
	Name        string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	ServingSize string
	Slot        domain.MealSlot
}

type MealPlanService interface {
	// GetPlan returns the day's AI meal plan, generating one if none is
	// stored or force is set. Generation never fails: when the model is
	// unreachable or returns garbage, a static fallback plan is stored and
	// served with its Fallback flag set.
	GetPlan(ctx context.Context, user *domain.User, date string, force bool) (*domain.GeneratedMealPlan, error)

	GetManualPlan(ctx context.Context, user *domain.User, date string) (*domain.ManualMealPlan, error)
	AddFood(ctx context.Context, user *domain.User, date string, input FoodInput) (*domain.ManualMealPlan, error)
	RemoveFood(ctx context.Context, user *domain.User, date string, entryID string) (*domain.ManualMealPlan, error)
}

type mealPlanService struct {
	mealRepo  repository.MealPlanRepository
	generator planner.Generator
	ledger    LedgerService
}

// NewMealPlanService creates a new instance of mealPlanService.
func NewMealPlanService(mealRepo repository.MealPlanRepository, generator planner.Generator, ledger LedgerService) MealPlanService {
	return &mealPlanService{mealRepo: mealRepo, generator: generator, ledger: ledger}
}

func (s *mealPlanService) GetPlan(ctx context.Context, user *domain.User, date string, force bool) (*domain.GeneratedMealPlan, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}

	if !force {
		existing, err := s.mealRepo.GetGenerated(ctx, user.ID, date)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	payload, err := s.generator.MealPlan(ctx, user, date)
	fallback := false
	if err != nil {
		log.Printf("Meal plan generation failed for user %s, serving fallback: %v", user.ID.Hex(), err)
		payload = planner.FallbackMealPlan(user.DailyCalories)
		fallback = true
	}

	plan := mealPlanFromPayload(user, date, payload, fallback)
	if err := s.mealRepo.SaveGenerated(ctx, plan); err != nil {
		return nil, err
	}

	// A new generation ID orphans marks against the previous plan, so the
	// derived record must be rebuilt.
	if _, err := s.ledger.RecomputeNutrition(ctx, user, date); err != nil {
		return nil, err
	}
	return plan, nil
}

// mealPlanFromPayload converts a model response into the stored plan. A fresh
// generation ID is minted so earlier marks against this date become inert.
func mealPlanFromPayload(user *domain.User, date string, payload planner.MealPlanPayload, fallback bool) *domain.GeneratedMealPlan {
	meals := make(map[domain.MealSlot]domain.GeneratedMeal, len(domain.MealSlots))
	add := func(slot domain.MealSlot, m *planner.MealPayload) {
		if m == nil || m.Menu == "" {
			return
		}
		meals[slot] = domain.GeneratedMeal{
			Menu:      m.Menu,
			Calories:  m.Calories,
			Time:      m.Time,
			Reasoning: m.Reasoning,
			Portions:  m.Portions,
			Protein:   m.Protein,
			Carbs:     m.Carbs,
			Fat:       m.Fat,
		}
	}
	add(domain.SlotBreakfast, payload.Breakfast)
	add(domain.SlotLunch, payload.Lunch)
	add(domain.SlotDinner, payload.Dinner)
	add(domain.SlotSnack, payload.Snack)

	total := payload.TotalCalories
	if total <= 0 {
		for _, m := range meals {
			total += m.Calories
		}
	}

	return &domain.GeneratedMealPlan{
		UserID:        user.ID,
		Date:          date,
		GenerationID:  uuid.NewString(),
		Meals:         meals,
		TotalCalories: total,
		NutritionTips: payload.NutritionTips,
		HydrationGoal: payload.HydrationGoal,
		Fallback:      fallback,
		GeneratedAt:   time.Now().UTC(),
	}
}

func (s *mealPlanService) GetManualPlan(ctx context.Context, user *domain.User, date string) (*domain.ManualMealPlan, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}
	plan, err := s.mealRepo.GetManual(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return emptyManualPlan(user, date), nil
		}
		return nil, err
	}
	return plan, nil
}

func (s *mealPlanService) AddFood(ctx context.Context, user *domain.User, date string, input FoodInput) (*domain.ManualMealPlan, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}
	if !domain.ValidSlot(input.Slot) {
		return nil, ErrInvalidSlot
	}
	if input.Name == "" || input.Calories < 0 {
		return nil, errors.New("food name is required and calories cannot be negative")
	}

	plan, err := s.mealRepo.GetManual(ctx, user.ID, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		plan = emptyManualPlan(user, date)
	}

	entry := domain.FoodEntry{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ServingSize: input.ServingSize,
		Slot:        input.Slot,
	}
	plan.Entries[input.Slot] = append(plan.Entries[input.Slot], entry)

	if err := s.mealRepo.SaveManual(ctx, plan); err != nil {
		return nil, err
	}
	// Adding never changes totals (new entries start unmarked), but keeping
	// the recompute here makes every plan edit leave a fresh record behind.
	if _, err := s.ledger.RecomputeNutrition(ctx, user, date); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *mealPlanService) RemoveFood(ctx context.Context, user *domain.User, date string, entryID string) (*domain.ManualMealPlan, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}

	plan, err := s.mealRepo.GetManual(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	removed := false
	for slot, entries := range plan.Entries {
		kept := entries[:0]
		for _, e := range entries {
			if e.ID == entryID {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		plan.Entries[slot] = kept
	}
	if !removed {
		return nil, ErrEntryNotFound
	}

	if err := s.mealRepo.SaveManual(ctx, plan); err != nil {
		return nil, err
	}
	// Any mark against the removed entry is now an orphan; the rebuilt record
	// drops its contribution.
	if _, err := s.ledger.RecomputeNutrition(ctx, user, date); err != nil {
		return nil, err
	}
	return plan, nil
}

func emptyManualPlan(user *domain.User, date string) *domain.ManualMealPlan {
	return &domain.ManualMealPlan{
		UserID:  user.ID,
		Date:    date,
		Entries: make(map[domain.MealSlot][]domain.FoodEntry),
	}
}
