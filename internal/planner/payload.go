// Package planner talks to an OpenAI-compatible completion endpoint to
// produce daily meal and workout plans. The model's output is treated as an
// untrusted, occasionally-malformed data source: responses are scrubbed of
// surrounding prose and code fences before parsing, and every parse failure
// maps to a static fallback plan rather than an error.
package planner

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when a response contains no JSON object at all.
var ErrNoJSON = errors.New("response contains no JSON object")

// MealPayload is one meal slot as the model returns it.
type MealPayload struct {
	Menu      string  `json:"menu"`
	Calories  float64 `json:"calories"`
	Time      string  `json:"time"`
	Reasoning string  `json:"reasoning"`
	Portions  string  `json:"portions"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
}

// MealPlanPayload is the JSON document requested from the model for a day's
// meals.
type MealPlanPayload struct {
	Breakfast     *MealPayload `json:"breakfast"`
	Lunch         *MealPayload `json:"lunch"`
	Dinner        *MealPayload `json:"dinner"`
	Snack         *MealPayload `json:"snack"`
	TotalCalories float64      `json:"totalCalories"`
	NutritionTips string       `json:"nutritionTips"`
	HydrationGoal string       `json:"hydrationGoal"`
}

// ExercisePayload is one exercise as the model returns it.
type ExercisePayload struct {
	Name      string `json:"name"`
	Sets      string `json:"sets"`
	Duration  string `json:"duration"`
	Type      string `json:"type"`
	Reasoning string `json:"reasoning"`
}

// WorkoutPlanPayload is the JSON document requested from the model for a
// day's workout.
type WorkoutPlanPayload struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	Duration  string            `json:"duration"`
	Intensity string            `json:"intensity"`
	Reasoning string            `json:"reasoning"`
	CoachTips string            `json:"coachTips"`
	Exercises []ExercisePayload `json:"exercises"`
}

// ExtractJSON pulls the first JSON object out of a completion that may wrap
// it in prose or markdown fences: fences are stripped, then the window from
// the first '{' to the last '}' is taken as the candidate document.
func ExtractJSON(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return "", ErrNoJSON
	}
	return cleaned[start : end+1], nil
}

// ParseMealPlan tolerantly parses a completion into a meal plan payload.
func ParseMealPlan(raw string) (MealPlanPayload, error) {
	var payload MealPlanPayload
	candidate, err := ExtractJSON(raw)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return MealPlanPayload{}, err
	}
	return payload, nil
}

// ParseWorkoutPlan tolerantly parses a completion into a workout plan payload.
func ParseWorkoutPlan(raw string) (WorkoutPlanPayload, error) {
	var payload WorkoutPlanPayload
	candidate, err := ExtractJSON(raw)
	if err != nil {
		return payload, err
	}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return WorkoutPlanPayload{}, err
	}
	return payload, nil
}
