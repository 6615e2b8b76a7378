package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"vitaplan/fitness-planner/internal/config"
	"vitaplan/fitness-planner/internal/domain"
)

// Generator produces plan payloads for a user's profile. Implementations may
// fail; callers are expected to substitute a fallback plan on error.
type Generator interface {
	MealPlan(ctx context.Context, user *domain.User, date string) (MealPlanPayload, error)
	WorkoutPlan(ctx context.Context, user *domain.User, date string) (WorkoutPlanPayload, error)
}

// Client is a Generator backed by an OpenAI-compatible endpoint.
type Client struct {
	llm     *openai.LLM
	timeout time.Duration
}

// NewClient builds a client for the configured endpoint. OpenRouter and any
// other OpenAI-compatible gateway work; only the base URL and token differ.
func NewClient(cfg config.PlannerConfig) (*Client, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize planner LLM: %w", err)
	}
	return &Client{llm: llm, timeout: cfg.Timeout}, nil
}

// MealPlan asks the model for a day of meals tuned to the user's targets.
func (c *Client) MealPlan(ctx context.Context, user *domain.User, date string) (MealPlanPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := llms.GenerateFromSinglePrompt(ctx, c.llm, mealPrompt(user, date))
	if err != nil {
		return MealPlanPayload{}, fmt.Errorf("meal plan completion: %w", err)
	}
	payload, err := ParseMealPlan(raw)
	if err != nil {
		return MealPlanPayload{}, fmt.Errorf("meal plan response: %w", err)
	}
	return payload, nil
}

// WorkoutPlan asks the model for a day's workout tuned to the user's goal.
func (c *Client) WorkoutPlan(ctx context.Context, user *domain.User, date string) (WorkoutPlanPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := llms.GenerateFromSinglePrompt(ctx, c.llm, workoutPrompt(user, date))
	if err != nil {
		return WorkoutPlanPayload{}, fmt.Errorf("workout plan completion: %w", err)
	}
	payload, err := ParseWorkoutPlan(raw)
	if err != nil {
		return WorkoutPlanPayload{}, fmt.Errorf("workout plan response: %w", err)
	}
	return payload, nil
}

func profileSummary(user *domain.User) string {
	summary := fmt.Sprintf(
		"Gender: %s\nAge: %d\nHeight: %.0f cm\nWeight: %.1f kg\nActivity level: %s\nGoal: %s\nDaily calorie target: %.0f kcal\nMacro targets: %.0fg protein, %.0fg carbs, %.0fg fat",
		user.Gender, user.Age, user.HeightCm, user.WeightKg,
		user.ActivityLevel, user.Goal,
		user.DailyCalories, user.ProteinTarget, user.CarbsTarget, user.FatTarget,
	)
	if len(user.DietaryRestrictions) > 0 {
		summary += fmt.Sprintf("\nDietary restrictions: %s", strings.Join(user.DietaryRestrictions, ", "))
	}
	if len(user.Allergies) > 0 {
		summary += fmt.Sprintf("\nAllergies: %s", strings.Join(user.Allergies, ", "))
	}
	return summary
}

func mealPrompt(user *domain.User, date string) string {
	return fmt.Sprintf(`You are a nutritionist creating a one-day meal plan for %s.

Client profile:
%s

Create a realistic, affordable meal plan whose calories sum close to the daily target.

Respond with ONLY a JSON object in exactly this format, no other text:
{
  "breakfast": {"menu": string, "calories": number, "time": string, "reasoning": string, "portions": string, "protein": number, "carbs": number, "fat": number},
  "lunch": {"menu": string, "calories": number, "time": string, "reasoning": string, "portions": string, "protein": number, "carbs": number, "fat": number},
  "dinner": {"menu": string, "calories": number, "time": string, "reasoning": string, "portions": string, "protein": number, "carbs": number, "fat": number},
  "snack": {"menu": string, "calories": number, "time": string, "reasoning": string, "portions": string, "protein": number, "carbs": number, "fat": number},
  "totalCalories": number,
  "nutritionTips": string,
  "hydrationGoal": string
}

Macros are in grams. Calories are kcal per meal.`, date, profileSummary(user))
}

func workoutPrompt(user *domain.User, date string) string {
	return fmt.Sprintf(`You are a fitness coach creating a one-day bodyweight workout for %s.

Client profile:
%s

The client trains at home with no equipment. Pick exercises from common
bodyweight movements (push up, squat, plank, sit up, lunge, burpee,
jumping jack, glute bridge, superman, crunch).

Respond with ONLY a JSON object in exactly this format, no other text:
{
  "day": string,
  "focus": string,
  "duration": string,
  "intensity": string,
  "reasoning": string,
  "coachTips": string,
  "exercises": [
    {"name": string, "sets": string, "duration": string, "type": string, "reasoning": string}
  ]
}

"sets" must look like "3x12" (sets x reps) for rep-based exercises, or a
duration like "3x30 seconds" for holds. Include 4 to 6 exercises.`, date, profileSummary(user))
}
