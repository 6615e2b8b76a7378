package service

import (
	"context"
	"testing"

	"vitaplan/fitness-planner/internal/domain"
)

const testDate = "2025-03-10"

func newLedgerFixture() (LedgerService, *fakeLedgerRepo, *fakeMealPlanRepo, *fakeWorkoutRepo) {
	ledgerRepo := newFakeLedgerRepo()
	mealRepo := newFakeMealPlanRepo()
	workoutRepo := newFakeWorkoutRepo()
	return NewLedgerService(ledgerRepo, mealRepo, workoutRepo), ledgerRepo, mealRepo, workoutRepo
}

func storedAIPlan(user *domain.User) *domain.GeneratedMealPlan {
	return &domain.GeneratedMealPlan{
		UserID:       user.ID,
		Date:         testDate,
		GenerationID: "gen1",
		Meals: map[domain.MealSlot]domain.GeneratedMeal{
			domain.SlotBreakfast: {Menu: "Oatmeal", Calories: 350},
			domain.SlotLunch:     {Menu: "Chicken and rice", Calories: 650},
		},
		TotalCalories: 1000,
	}
}

func TestToggleFoodMarksAndRecomputes(t *testing.T) {
	svc, ledgerRepo, mealRepo, _ := newLedgerFixture()
	user := testUser()
	plan := storedAIPlan(user)
	mealRepo.generated[key(user.ID, testDate)] = plan

	ctx := context.Background()
	consumed, rec, err := svc.ToggleFood(ctx, user, testDate, domain.ProvenanceAI, plan.EntryID(domain.SlotBreakfast), domain.SlotBreakfast)
	if err != nil {
		t.Fatalf("ToggleFood: %v", err)
	}
	if !consumed {
		t.Error("first toggle should mark as consumed")
	}
	if rec.Calories != 350 {
		t.Errorf("calories = %v, want 350", rec.Calories)
	}

	// The derived record was written through, not just returned.
	stored, err := ledgerRepo.GetNutrition(ctx, user.ID, testDate)
	if err != nil || stored.Calories != 350 {
		t.Errorf("stored record = %+v, err %v", stored, err)
	}

	// Toggling again reverts both the mark and the totals.
	consumed, rec, err = svc.ToggleFood(ctx, user, testDate, domain.ProvenanceAI, plan.EntryID(domain.SlotBreakfast), domain.SlotBreakfast)
	if err != nil {
		t.Fatalf("second ToggleFood: %v", err)
	}
	if consumed {
		t.Error("second toggle should unmark")
	}
	if rec.Calories != 0 {
		t.Errorf("calories after untoggle = %v, want 0", rec.Calories)
	}
}

func TestToggleFoodValidation(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	user := testUser()
	ctx := context.Background()

	if _, _, err := svc.ToggleFood(ctx, user, "bad-date", domain.ProvenanceAI, "x", domain.SlotLunch); err != ErrInvalidDate {
		t.Errorf("bad date: got %v", err)
	}
	if _, _, err := svc.ToggleFood(ctx, user, testDate, domain.ProvenanceAI, "x", domain.MealSlot("brunch")); err != ErrInvalidSlot {
		t.Errorf("bad slot: got %v", err)
	}
	if _, _, err := svc.ToggleFood(ctx, user, testDate, domain.Provenance("magic"), "x", domain.SlotLunch); err == nil {
		t.Error("bad provenance should fail")
	}
	if _, _, err := svc.ToggleFood(ctx, user, testDate, domain.ProvenanceAI, "", domain.SlotLunch); err == nil {
		t.Error("empty entry id should fail")
	}
}

func TestToggleAgainstMissingPlanIsInert(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	user := testUser()

	// No plan stored for the date; the mark lands but resolves to nothing.
	consumed, rec, err := svc.ToggleFood(context.Background(), user, testDate, domain.ProvenanceAI, "gen9:lunch", domain.SlotLunch)
	if err != nil {
		t.Fatalf("ToggleFood: %v", err)
	}
	if !consumed {
		t.Error("mark should be recorded even without a plan")
	}
	if rec.Calories != 0 {
		t.Errorf("orphan mark contributed %v calories", rec.Calories)
	}
}

func TestGetDailySummaryDefaults(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	user := testUser()

	summary, err := svc.GetDailySummary(context.Background(), user, testDate)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}
	if summary.Nutrition.Calories != 0 || summary.Workout.CaloriesBurned != 0 {
		t.Errorf("fresh day should be zeros, got %+v", summary)
	}
	if summary.Nutrition.TargetCalories != user.DailyCalories {
		t.Errorf("target = %v, want %v", summary.Nutrition.TargetCalories, user.DailyCalories)
	}
	if summary.CalorieProgress != 0 {
		t.Errorf("progress = %v, want 0", summary.CalorieProgress)
	}
}

func TestGetDailySummaryProgress(t *testing.T) {
	svc, ledgerRepo, _, _ := newLedgerFixture()
	user := testUser()
	ctx := context.Background()

	ledgerRepo.nutrition[key(user.ID, testDate)] = &domain.DailyNutritionRecord{
		UserID: user.ID, Date: testDate,
		Calories: 500, Protein: 40, TargetCalories: 2000,
	}
	ledgerRepo.workouts[key(user.ID, testDate)] = &domain.DailyWorkoutRecord{
		UserID: user.ID, Date: testDate, CaloriesBurned: 200, CompletedExercises: 3,
	}

	summary, err := svc.GetDailySummary(ctx, user, testDate)
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}
	if summary.CalorieProgress != 25 {
		t.Errorf("calorie progress = %v, want 25", summary.CalorieProgress)
	}
	if summary.NetCalories != 300 {
		t.Errorf("net = %v, want 300", summary.NetCalories)
	}
}

func TestWeeklyHistoryEmptyWeek(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	user := testUser()

	stats, err := svc.WeeklyHistory(context.Background(), user, testDate, 7)
	if err != nil {
		t.Fatalf("WeeklyHistory: %v", err)
	}
	if len(stats) != 7 {
		t.Fatalf("got %d rows, want 7", len(stats))
	}
	wantDates := []string{
		"2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07",
		"2025-03-08", "2025-03-09", "2025-03-10",
	}
	for i, row := range stats {
		if row.Date != wantDates[i] {
			t.Errorf("row %d date = %s, want %s", i, row.Date, wantDates[i])
		}
		if row.CaloriesIn != 0 || row.CaloriesBurned != 0 || row.WorkoutCount != 0 {
			t.Errorf("row %d should be all zeros, got %+v", i, row)
		}
	}
}

func TestWeeklyHistoryMixedDays(t *testing.T) {
	svc, ledgerRepo, _, _ := newLedgerFixture()
	user := testUser()

	ledgerRepo.nutrition[key(user.ID, "2025-03-08")] = &domain.DailyNutritionRecord{
		UserID: user.ID, Date: "2025-03-08", Calories: 1800, Protein: 120,
	}
	ledgerRepo.workouts[key(user.ID, "2025-03-08")] = &domain.DailyWorkoutRecord{
		UserID: user.ID, Date: "2025-03-08", CaloriesBurned: 300, CompletedExercises: 4, Focus: "Core",
	}

	stats, err := svc.WeeklyHistory(context.Background(), user, testDate, 7)
	if err != nil {
		t.Fatalf("WeeklyHistory: %v", err)
	}
	var active domain.DailyStats
	for _, row := range stats {
		if row.Date == "2025-03-08" {
			active = row
		} else if row.CaloriesIn != 0 {
			t.Errorf("day %s should be zero, got %+v", row.Date, row)
		}
	}
	if active.CaloriesIn != 1800 || active.CaloriesBurned != 300 || active.WorkoutCount != 4 {
		t.Errorf("active day = %+v", active)
	}
	if active.NetCalories != 1500 {
		t.Errorf("net = %v, want 1500", active.NetCalories)
	}
	if active.WorkoutFocus != "Core" {
		t.Errorf("focus = %q", active.WorkoutFocus)
	}
}
