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
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidProfile = errors.New("profile values out of range")
)

// ProfileInput carries the raw body measurements and preferences supplied by
// the user. Derived targets are always recomputed server-side.
type ProfileInput struct {
	Gender        domain.Gender
	Age           int
	HeightCm      float64
	WeightKg      float64
	ActivityLevel domain.ActivityLevel
	Goal          domain.Goal

	DietaryRestrictions []string
	Allergies           []string
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, input ProfileInput) (*domain.User, error)
	SetPlanMode(ctx context.Context, userID primitive.ObjectID, mode domain.PlanMode) (*domain.User, error)
	LogWeight(ctx context.Context, userID primitive.ObjectID, date string, weightKg float64, notes string) (*domain.ProgressEntry, error)
	WeightHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
}

type profileService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository) ProfileService {
	return &profileService{userRepo: userRepo, progressRepo: progressRepo}
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile stores the raw measurements and recomputes every derived
// target (BMI, ideal weight, calorie and macro targets) in one write.
func (s *profileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input ProfileInput) (*domain.User, error) {
	if input.Age <= 0 || input.HeightCm <= 0 || input.WeightKg <= 0 {
		return nil, ErrInvalidProfile
	}
	if !domain.ValidGender(input.Gender) || !domain.ValidActivityLevel(input.ActivityLevel) || !domain.ValidGoal(input.Goal) {
		return nil, ErrInvalidProfile
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Gender = input.Gender
	user.Age = input.Age
	user.HeightCm = input.HeightCm
	user.WeightKg = input.WeightKg
	user.ActivityLevel = input.ActivityLevel
	user.Goal = input.Goal
	user.DietaryRestrictions = input.DietaryRestrictions
	user.Allergies = input.Allergies
	user.ApplyDerivedFields()
	user.ProfileCompleted = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// SetPlanMode switches the user between AI-generated and manually tracked
// meals. Marks from the inactive mode stay stored and become visible again
// when the user switches back.
func (s *profileService) SetPlanMode(ctx context.Context, userID primitive.ObjectID, mode domain.PlanMode) (*domain.User, error) {
	if mode != domain.PlanModeAI && mode != domain.PlanModeManual {
		return nil, errors.New("plan mode must be ai or manual")
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PlanMode = mode
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// LogWeight records a dated weight entry, replacing any entry already logged
// for that day. The profile's current weight follows the latest entry so
// calorie targets and burn estimates track the user's actual weight.
func (s *profileService) LogWeight(ctx context.Context, userID primitive.ObjectID, date string, weightKg float64, notes string) (*domain.ProgressEntry, error) {
	if !domain.ValidDateKey(date) {
		return nil, errors.New("date must be formatted as YYYY-MM-DD")
	}
	if weightKg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	entry := &domain.ProgressEntry{
		UserID:   userID,
		Date:     date,
		WeightKg: weightKg,
		Notes:    notes,
		LoggedAt: time.Now().UTC(),
	}
	if err := s.progressRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.WeightKg = weightKg
	if user.ProfileCompleted {
		user.ApplyDerivedFields()
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *profileService) WeightHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	return s.progressRepo.ListByUser(ctx, userID)
}
