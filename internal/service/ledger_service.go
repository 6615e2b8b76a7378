package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vitaplan/fitness-planner/internal/domain"
	"vitaplan/fitness-planner/internal/repository"
)

var (
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidSlot = errors.New("slot must be breakfast, lunch, dinner, or snack")
)

// DailySummary is the combined view of one day: what was consumed, what was
// burned, and how far along the user is against their targets.
type DailySummary struct {
	Date            string                      `json:"date"`
	Nutrition       domain.DailyNutritionRecord `json:"nutrition"`
	Workout         domain.DailyWorkoutRecord   `json:"workout"`
	CalorieProgress float64                     `json:"calorieProgress"`
	ProteinProgress float64                     `json:"proteinProgress"`
	CarbsProgress   float64                     `json:"carbsProgress"`
	FatProgress     float64                     `json:"fatProgress"`
	NetCalories     float64                     `json:"netCalories"`
}

type LedgerService interface {
	// ToggleFood flips one entry's consumed state and returns the new state
	// together with the freshly derived nutrition record.
	ToggleFood(ctx context.Context, user *domain.User, date string, provenance domain.Provenance, entryID string, slot domain.MealSlot) (bool, *domain.DailyNutritionRecord, error)

	// RecomputeNutrition rebuilds and stores the day's nutrition record from
	// the current plans and marks.
	RecomputeNutrition(ctx context.Context, user *domain.User, date string) (*domain.DailyNutritionRecord, error)

	// RecomputeWorkout rebuilds and stores the day's activity record from the
	// current workout log.
	RecomputeWorkout(ctx context.Context, user *domain.User, date string) (*domain.DailyWorkoutRecord, error)

	GetDailySummary(ctx context.Context, user *domain.User, date string) (*DailySummary, error)

	// WeeklyHistory returns the window of daysBack calendar days ending at
	// endDate, oldest first. Days with no stored records appear as true zero
	// rows, never as gaps.
	WeeklyHistory(ctx context.Context, user *domain.User, endDate string, daysBack int) ([]domain.DailyStats, error)
}

type ledgerService struct {
	ledgerRepo  repository.LedgerRepository
	mealRepo    repository.MealPlanRepository
	workoutRepo repository.WorkoutRepository
}

// NewLedgerService creates a new instance of ledgerService.
func NewLedgerService(ledgerRepo repository.LedgerRepository, mealRepo repository.MealPlanRepository, workoutRepo repository.WorkoutRepository) LedgerService {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		mealRepo:    mealRepo,
		workoutRepo: workoutRepo,
	}
}

// loadMarks returns the day's mark set, empty when nothing is stored yet.
func (s *ledgerService) loadMarks(ctx context.Context, userID primitive.ObjectID, date string) (domain.MarkSet, error) {
	stored, err := s.ledgerRepo.GetMarks(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewMarkSet(nil), nil
		}
		return nil, err
	}
	return domain.NewMarkSet(stored.Keys), nil
}

func (s *ledgerService) ToggleFood(ctx context.Context, user *domain.User, date string, provenance domain.Provenance, entryID string, slot domain.MealSlot) (bool, *domain.DailyNutritionRecord, error) {
	if !domain.ValidDateKey(date) {
		return false, nil, ErrInvalidDate
	}
	if !domain.ValidSlot(slot) {
		return false, nil, ErrInvalidSlot
	}
	if provenance != domain.ProvenanceAI && provenance != domain.ProvenanceManual {
		return false, nil, errors.New("provenance must be ai or manual")
	}
	if entryID == "" {
		return false, nil, errors.New("entry id cannot be empty")
	}

	marks, err := s.loadMarks(ctx, user.ID, date)
	if err != nil {
		return false, nil, err
	}
	marked := marks.Toggle(domain.MarkKey(provenance, entryID, slot, date))

	if err := s.ledgerRepo.SaveMarks(ctx, &domain.ConsumptionMarks{
		UserID: user.ID,
		Date:   date,
		Keys:   marks.Keys(),
	}); err != nil {
		return false, nil, err
	}

	// The derived record is rebuilt synchronously so readers never observe a
	// toggle without its effect on the totals.
	rec, err := s.recomputeNutritionWith(ctx, user, date, marks)
	if err != nil {
		return false, nil, err
	}
	return marked, rec, nil
}

func (s *ledgerService) RecomputeNutrition(ctx context.Context, user *domain.User, date string) (*domain.DailyNutritionRecord, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}
	marks, err := s.loadMarks(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	return s.recomputeNutritionWith(ctx, user, date, marks)
}

func (s *ledgerService) recomputeNutritionWith(ctx context.Context, user *domain.User, date string, marks domain.MarkSet) (*domain.DailyNutritionRecord, error) {
	var generated *domain.GeneratedMealPlan
	var manual *domain.ManualMealPlan
	var err error

	switch user.ActivePlanMode() {
	case domain.PlanModeManual:
		manual, err = s.mealRepo.GetManual(ctx, user.ID, date)
	default:
		generated, err = s.mealRepo.GetGenerated(ctx, user.ID, date)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	rec := domain.AggregateNutrition(date, user.DailyCalories, user.ActivePlanMode(), generated, manual, marks)
	rec.UserID = user.ID
	if err := s.ledgerRepo.SaveNutrition(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *ledgerService) RecomputeWorkout(ctx context.Context, user *domain.User, date string) (*domain.DailyWorkoutRecord, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}
	log, err := s.workoutRepo.GetLog(ctx, user.ID, date)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	rec := domain.AggregateWorkout(date, log)
	rec.UserID = user.ID
	if err := s.ledgerRepo.SaveWorkout(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *ledgerService) GetDailySummary(ctx context.Context, user *domain.User, date string) (*DailySummary, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}

	nutrition, err := s.ledgerRepo.GetNutrition(ctx, user.ID, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		nutrition = &domain.DailyNutritionRecord{UserID: user.ID, Date: date, TargetCalories: user.DailyCalories}
	}
	workout, err := s.ledgerRepo.GetWorkout(ctx, user.ID, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		workout = &domain.DailyWorkoutRecord{UserID: user.ID, Date: date}
	}

	return &DailySummary{
		Date:            date,
		Nutrition:       *nutrition,
		Workout:         *workout,
		CalorieProgress: domain.ProgressPercent(nutrition.Calories, nutrition.TargetCalories),
		ProteinProgress: domain.ProgressPercent(nutrition.Protein, user.ProteinTarget),
		CarbsProgress:   domain.ProgressPercent(nutrition.Carbs, user.CarbsTarget),
		FatProgress:     domain.ProgressPercent(nutrition.Fat, user.FatTarget),
		NetCalories:     nutrition.Calories - workout.CaloriesBurned,
	}, nil
}

func (s *ledgerService) WeeklyHistory(ctx context.Context, user *domain.User, endDate string, daysBack int) ([]domain.DailyStats, error) {
	if !domain.ValidDateKey(endDate) {
		return nil, ErrInvalidDate
	}
	if daysBack <= 0 {
		daysBack = 7
	}
	end, _ := time.Parse(domain.DateKeyLayout, endDate)

	stats := make([]domain.DailyStats, 0, daysBack)
	for i := daysBack - 1; i >= 0; i-- {
		date := domain.DateKey(end.AddDate(0, 0, -i))
		row := domain.DailyStats{Date: date}

		nutrition, err := s.ledgerRepo.GetNutrition(ctx, user.ID, date)
		if err == nil {
			row.CaloriesIn = nutrition.Calories
			row.Protein = nutrition.Protein
			row.Carbs = nutrition.Carbs
			row.Fat = nutrition.Fat
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		workout, err := s.ledgerRepo.GetWorkout(ctx, user.ID, date)
		if err == nil {
			row.CaloriesBurned = workout.CaloriesBurned
			row.WorkoutCount = workout.CompletedExercises
			row.WorkoutFocus = workout.Focus
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		row.NetCalories = row.CaloriesIn - row.CaloriesBurned
		stats = append(stats, row)
	}
	return stats, nil
}
