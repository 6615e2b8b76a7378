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

var ErrExerciseNotPlanned = errors.New("exercise is not part of today's plan")

// ExerciseMediaResolver resolves a demo media URL for an exercise name.
// An empty URL means no media is available for that exercise.
type ExerciseMediaResolver interface {
	DemoURL(ctx context.Context, exerciseName string) (string, error)
}

type WorkoutService interface {
	// GetPlan returns the day's AI workout plan, generating one if none is
	// stored or force is set. Like meal plans, generation never fails; the
	// static fallback session is served when the model cannot.
	GetPlan(ctx context.Context, user *domain.User, date string, force bool) (*domain.GeneratedWorkoutPlan, error)

	// CompletePlanned logs a planned exercise as done, deriving reps from its
	// set spec and the burn from the user's weight.
	CompletePlanned(ctx context.Context, user *domain.User, date string, exerciseName string) (*domain.WorkoutLog, *domain.DailyWorkoutRecord, error)

	// LogExercise logs an ad-hoc exercise that is not part of any plan.
	LogExercise(ctx context.Context, user *domain.User, date string, name string, reps int) (*domain.WorkoutLog, *domain.DailyWorkoutRecord, error)

	GetLog(ctx context.Context, user *domain.User, date string) (*domain.WorkoutLog, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	generator   planner.Generator
	ledger      LedgerService
	media       ExerciseMediaResolver // may be nil when no storage is configured
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, generator planner.Generator, ledger LedgerService, media ExerciseMediaResolver) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		generator:   generator,
		ledger:      ledger,
		media:       media,
	}
}

func (s *workoutService) GetPlan(ctx context.Context, user *domain.User, date string, force bool) (*domain.GeneratedWorkoutPlan, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}

	if !force {
		existing, err := s.workoutRepo.GetGenerated(ctx, user.ID, date)
		if err == nil {
			s.attachMedia(ctx, existing)
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	payload, err := s.generator.WorkoutPlan(ctx, user, date)
	fallback := false
	if err != nil {
		log.Printf("Workout plan generation failed for user %s, serving fallback: %v", user.ID.Hex(), err)
		payload = planner.FallbackWorkoutPlan()
		fallback = true
	}

	plan := workoutPlanFromPayload(user, date, payload, fallback)
	if err := s.workoutRepo.SaveGenerated(ctx, plan); err != nil {
		return nil, err
	}
	s.attachMedia(ctx, plan)
	return plan, nil
}

func workoutPlanFromPayload(user *domain.User, date string, payload planner.WorkoutPlanPayload, fallback bool) *domain.GeneratedWorkoutPlan {
	exercises := make([]domain.PlannedExercise, 0, len(payload.Exercises))
	for _, ex := range payload.Exercises {
		if ex.Name == "" {
			continue
		}
		sets := ex.Sets
		if sets == "" {
			sets = domain.DefaultSetSpec
		}
		exercises = append(exercises, domain.PlannedExercise{
			Name:      ex.Name,
			Sets:      sets,
			Duration:  ex.Duration,
			Type:      ex.Type,
			Reasoning: ex.Reasoning,
		})
	}

	return &domain.GeneratedWorkoutPlan{
		UserID:       user.ID,
		Date:         date,
		GenerationID: uuid.NewString(),
		Day:          payload.Day,
		Focus:        payload.Focus,
		Duration:     payload.Duration,
		Intensity:    payload.Intensity,
		Reasoning:    payload.Reasoning,
		CoachTips:    payload.CoachTips,
		Exercises:    exercises,
		Fallback:     fallback,
		GeneratedAt:  time.Now().UTC(),
	}
}

// attachMedia decorates the plan with demo media URLs. Failures only cost the
// URL; the plan itself is always served.
func (s *workoutService) attachMedia(ctx context.Context, plan *domain.GeneratedWorkoutPlan) {
	if s.media == nil {
		return
	}
	for i := range plan.Exercises {
		url, err := s.media.DemoURL(ctx, plan.Exercises[i].Name)
		if err != nil {
			log.Printf("Failed to resolve demo media for %q: %v", plan.Exercises[i].Name, err)
			continue
		}
		plan.Exercises[i].MediaURL = url
	}
}

func (s *workoutService) CompletePlanned(ctx context.Context, user *domain.User, date string, exerciseName string) (*domain.WorkoutLog, *domain.DailyWorkoutRecord, error) {
	if !domain.ValidDateKey(date) {
		return nil, nil, ErrInvalidDate
	}

	plan, err := s.workoutRepo.GetGenerated(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrExerciseNotPlanned
		}
		return nil, nil, err
	}
	planned, ok := plan.Exercise(exerciseName)
	if !ok {
		return nil, nil, ErrExerciseNotPlanned
	}

	reps := domain.ParseSetSpec(planned.Sets)
	return s.appendCompleted(ctx, user, date, plan.Focus, planned.Name, reps)
}

func (s *workoutService) LogExercise(ctx context.Context, user *domain.User, date string, name string, reps int) (*domain.WorkoutLog, *domain.DailyWorkoutRecord, error) {
	if !domain.ValidDateKey(date) {
		return nil, nil, ErrInvalidDate
	}
	if name == "" || reps <= 0 {
		return nil, nil, errors.New("exercise name and a positive rep count are required")
	}
	return s.appendCompleted(ctx, user, date, "", name, reps)
}

func (s *workoutService) appendCompleted(ctx context.Context, user *domain.User, date, focus, name string, reps int) (*domain.WorkoutLog, *domain.DailyWorkoutRecord, error) {
	workoutLog, err := s.workoutRepo.GetLog(ctx, user.ID, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, nil, err
		}
		workoutLog = &domain.WorkoutLog{UserID: user.ID, Date: date}
	}
	if focus != "" && workoutLog.Focus == "" {
		workoutLog.Focus = focus
	}

	perRep := domain.CaloriesPerRep(name)
	workoutLog.Completed = append(workoutLog.Completed, domain.CompletedExercise{
		Name:           name,
		Reps:           reps,
		CaloriesPerRep: perRep,
		CaloriesBurned: domain.ExerciseCalories(name, reps, user.WeightKg),
		LoggedAt:       time.Now().UTC(),
	})

	if err := s.workoutRepo.SaveLog(ctx, workoutLog); err != nil {
		return nil, nil, err
	}
	rec, err := s.ledger.RecomputeWorkout(ctx, user, date)
	if err != nil {
		return nil, nil, err
	}
	return workoutLog, rec, nil
}

func (s *workoutService) GetLog(ctx context.Context, user *domain.User, date string) (*domain.WorkoutLog, error) {
	if !domain.ValidDateKey(date) {
		return nil, ErrInvalidDate
	}
	workoutLog, err := s.workoutRepo.GetLog(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.WorkoutLog{UserID: user.ID, Date: date}, nil
		}
		return nil, err
	}
	return workoutLog, nil
}
