package service

import (
	"context"
	"testing"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/planner"
)

func newMealFixture(gen *fakeGenerator) (MealPlanService, LedgerService, *fakeMealPlanRepo, *fakeLedgerRepo) {
	ledgerRepo := newFakeLedgerRepo()
	mealRepo := newFakeMealPlanRepo()
	workoutRepo := newFakeWorkoutRepo()
	ledger := NewLedgerService(ledgerRepo, mealRepo, workoutRepo)
	return NewMealPlanService(mealRepo, gen, ledger), ledger, mealRepo, ledgerRepo
}

func cannedMealPayload() planner.MealPlanPayload {
	return planner.MealPlanPayload{
		Breakfast:     &planner.MealPayload{Menu: "Oatmeal", Calories: 350},
		Lunch:         &planner.MealPayload{Menu: "Chicken and rice", Calories: 650},
		Dinner:        &planner.MealPayload{Menu: "Fish and vegetables", Calories: 550},
		Snack:         &planner.MealPayload{Menu: "Yogurt", Calories: 200},
		TotalCalories: 1750,
		HydrationGoal: "8 glasses",
	}
}

func TestGetPlanGeneratesAndStores(t *testing.T) {
	gen := &fakeGenerator{meal: cannedMealPayload()}
	svc, _, mealRepo, _ := newMealFixture(gen)
	user := testUser()
	ctx := context.Background()

	plan, err := svc.GetPlan(ctx, user, testDate, false)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if plan.Fallback {
		t.Error("successful generation should not be marked fallback")
	}
	if len(plan.Meals) != 4 || plan.TotalCalories != 1750 {
		t.Errorf("plan = %+v", plan)
	}
	if plan.GenerationID == "" {
		t.Error("plan must carry a generation ID")
	}
	if _, err := mealRepo.GetGenerated(ctx, user.ID, testDate); err != nil {
		t.Errorf("plan was not stored: %v", err)
	}
}

func TestGetPlanServesCachedPlan(t *testing.T) {
	gen := &fakeGenerator{meal: cannedMealPayload()}
	svc, _, _, _ := newMealFixture(gen)
	user := testUser()
	ctx := context.Background()

	first, err := svc.GetPlan(ctx, user, testDate, false)
	if err != nil {
		t.Fatalf("first GetPlan: %v", err)
	}
	second, err := svc.GetPlan(ctx, user, testDate, false)
	if err != nil {
		t.Fatalf("second GetPlan: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
	if second.GenerationID != first.GenerationID {
		t.Error("cached plan should be returned unchanged")
	}
}

func TestGetPlanForceRegeneratesAndOrphansMarks(t *testing.T) {
	gen := &fakeGenerator{meal: cannedMealPayload()}
	svc, ledger, _, ledgerRepo := newMealFixture(gen)
	user := testUser()
	ctx := context.Background()

	first, err := svc.GetPlan(ctx, user, testDate, false)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}

	// Consume breakfast against the first generation.
	_, rec, err := ledger.ToggleFood(ctx, user, testDate, domain.ProvenanceAI, first.EntryID(domain.SlotBreakfast), domain.SlotBreakfast)
	if err != nil {
		t.Fatalf("ToggleFood: %v", err)
	}
	if rec.Calories != 350 {
		t.Fatalf("calories = %v, want 350", rec.Calories)
	}

	second, err := svc.GetPlan(ctx, user, testDate, true)
	if err != nil {
		t.Fatalf("force GetPlan: %v", err)
	}
	if second.GenerationID == first.GenerationID {
		t.Fatal("regeneration must mint a new generation ID")
	}

	// The old mark no longer resolves; the rebuilt record is zero.
	stored, err := ledgerRepo.GetNutrition(ctx, user.ID, testDate)
	if err != nil {
		t.Fatalf("GetNutrition: %v", err)
	}
	if stored.Calories != 0 {
		t.Errorf("stale mark leaked into new plan: %v calories", stored.Calories)
	}
}

func TestGetPlanFallsBackOnGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{failing: true}
	svc, _, _, _ := newMealFixture(gen)
	user := testUser()

	plan, err := svc.GetPlan(context.Background(), user, testDate, false)
	if err != nil {
		t.Fatalf("GetPlan must not fail when the model does: %v", err)
	}
	if !plan.Fallback {
		t.Error("plan should be marked as fallback")
	}
	if len(plan.Meals) != 4 {
		t.Errorf("fallback plan has %d meals, want 4", len(plan.Meals))
	}
	if plan.TotalCalories != user.DailyCalories {
		t.Errorf("fallback total = %v, want target %v", plan.TotalCalories, user.DailyCalories)
	}
}

func TestAddAndToggleManualFood(t *testing.T) {
	gen := &fakeGenerator{}
	svc, ledger, _, _ := newMealFixture(gen)
	user := testUser()
	user.PlanMode = domain.PlanModeManual
	ctx := context.Background()

	plan, err := svc.AddFood(ctx, user, testDate, FoodInput{
		Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Slot: domain.SlotBreakfast,
	})
	if err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	entries := plan.Entries[domain.SlotBreakfast]
	if len(entries) != 1 || entries[0].ID == "" {
		t.Fatalf("entries = %+v", entries)
	}

	// New entries start unconsumed.
	rec, err := ledger.RecomputeNutrition(ctx, user, testDate)
	if err != nil {
		t.Fatalf("RecomputeNutrition: %v", err)
	}
	if rec.Calories != 0 {
		t.Errorf("unmarked entry counted: %v", rec.Calories)
	}

	_, rec, err = ledger.ToggleFood(ctx, user, testDate, domain.ProvenanceManual, entries[0].ID, domain.SlotBreakfast)
	if err != nil {
		t.Fatalf("ToggleFood: %v", err)
	}
	if rec.Calories != 59 || rec.Protein != 10 {
		t.Errorf("rec = %+v", rec)
	}
}

func TestRemoveFoodDropsMarkedContribution(t *testing.T) {
	gen := &fakeGenerator{}
	svc, ledger, _, ledgerRepo := newMealFixture(gen)
	user := testUser()
	user.PlanMode = domain.PlanModeManual
	ctx := context.Background()

	plan, err := svc.AddFood(ctx, user, testDate, FoodInput{Name: "Almonds", Calories: 579, Slot: domain.SlotSnack})
	if err != nil {
		t.Fatalf("AddFood: %v", err)
	}
	entryID := plan.Entries[domain.SlotSnack][0].ID

	if _, _, err := ledger.ToggleFood(ctx, user, testDate, domain.ProvenanceManual, entryID, domain.SlotSnack); err != nil {
		t.Fatalf("ToggleFood: %v", err)
	}

	if _, err := svc.RemoveFood(ctx, user, testDate, entryID); err != nil {
		t.Fatalf("RemoveFood: %v", err)
	}

	stored, err := ledgerRepo.GetNutrition(ctx, user.ID, testDate)
	if err != nil {
		t.Fatalf("GetNutrition: %v", err)
	}
	if stored.Calories != 0 {
		t.Errorf("removed entry still counted: %v", stored.Calories)
	}
}

func TestRemoveFoodUnknownEntry(t *testing.T) {
	gen := &fakeGenerator{}
	svc, _, _, _ := newMealFixture(gen)
	user := testUser()

	if _, err := svc.RemoveFood(context.Background(), user, testDate, "missing"); err != ErrEntryNotFound {
		t.Errorf("got %v, want ErrEntryNotFound", err)
	}
}
