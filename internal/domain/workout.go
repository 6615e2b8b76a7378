package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReferenceWeightKg is the body weight the per-rep calorie table assumes.
// Burn estimates scale linearly against it.
const ReferenceWeightKg = 70.0

// DefaultSetSpec is substituted when a planned exercise arrives without one.
const DefaultSetSpec = "3x10"

// caloriesPerRep maps exercise-name substrings to kcal per repetition at the
// reference weight. First match wins; lookup is case-insensitive.
var caloriesPerRep = []struct {
	substr string
	kcal   float64
}{
	{"push up", 2.5},
	{"push-up", 2.5},
	{"pushup", 2.5},
	{"squat", 3.5},
	{"burpee", 4.5},
	{"lunge", 3.0},
	{"sit up", 2.0},
	{"sit-up", 2.0},
	{"situp", 2.0},
	{"crunch", 1.5},
	{"plank", 3.0},
	{"jumping jack", 1.0},
	{"glute bridge", 2.0},
	{"superman", 2.0},
}

const defaultCaloriesPerRep = 3.0

// CaloriesPerRep looks up the per-rep estimate for an exercise name.
func CaloriesPerRep(name string) float64 {
	lower := strings.ToLower(name)
	for _, row := range caloriesPerRep {
		if strings.Contains(lower, row.substr) {
			return row.kcal
		}
	}
	return defaultCaloriesPerRep
}

// ExerciseCalories estimates the burn for reps of an exercise, scaled by the
// user's weight against the reference weight. Always a whole, non-negative
// kcal figure.
func ExerciseCalories(name string, reps int, weightKg float64) float64 {
	if reps <= 0 {
		return 0
	}
	if weightKg <= 0 {
		weightKg = ReferenceWeightKg
	}
	return math.Round(CaloriesPerRep(name) * float64(reps) * (weightKg / ReferenceWeightKg))
}

// ParseSetSpec extracts total repetitions from a "3x15"-style spec.
// Time-based specs ("3x45 detik", "1x10 menit") and anything unparseable
// fall back to the default spec's total.
func ParseSetSpec(spec string) int {
	sets, reps, ok := splitSetSpec(spec)
	if !ok {
		sets, reps, _ = splitSetSpec(DefaultSetSpec)
	}
	return sets * reps
}

func splitSetSpec(spec string) (sets, reps int, ok bool) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(spec)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	sets, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || sets <= 0 {
		return 0, 0, false
	}
	// Reject rep counts with trailing units ("45 detik" is a duration).
	reps, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || reps <= 0 {
		return 0, 0, false
	}
	return sets, reps, true
}

// PlannedExercise is one exercise of an AI workout plan.
type PlannedExercise struct {
	Name      string `bson:"name" json:"name"`
	Sets      string `bson:"sets" json:"sets"`
	Duration  string `bson:"duration,omitempty" json:"duration,omitempty"`
	Type      string `bson:"type,omitempty" json:"type,omitempty"`
	Reasoning string `bson:"reasoning,omitempty" json:"reasoning,omitempty"`
	// MediaURL is attached at response time when demo media exists; never stored.
	MediaURL string `bson:"-" json:"mediaUrl,omitempty"`
}

// GeneratedWorkoutPlan is the per-day AI workout plan.
type GeneratedWorkoutPlan struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID       primitive.ObjectID `bson:"userId" json:"-"`
	Date         string             `bson:"date" json:"date"`
	GenerationID string             `bson:"generationId" json:"generationId"`
	Day          string             `bson:"day,omitempty" json:"day,omitempty"`
	Focus        string             `bson:"focus,omitempty" json:"focus,omitempty"`
	Duration     string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Intensity    string             `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Reasoning    string             `bson:"reasoning,omitempty" json:"reasoning,omitempty"`
	CoachTips    string             `bson:"coachTips,omitempty" json:"coachTips,omitempty"`
	Exercises    []PlannedExercise  `bson:"exercises" json:"exercises"`
	Fallback     bool               `bson:"fallback" json:"fallback"`
	GeneratedAt  time.Time          `bson:"generatedAt" json:"generatedAt"`
}

// Exercise finds a planned exercise by name (case-insensitive).
func (p *GeneratedWorkoutPlan) Exercise(name string) (PlannedExercise, bool) {
	for _, ex := range p.Exercises {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return PlannedExercise{}, false
}

// CompletedExercise is a logged exercise for a date. Logging is consuming:
// there is no separate mark for workout entries.
type CompletedExercise struct {
	Name           string    `bson:"name" json:"name"`
	Reps           int       `bson:"reps" json:"reps"`
	CaloriesPerRep float64   `bson:"caloriesPerRep" json:"caloriesPerRep"`
	CaloriesBurned float64   `bson:"caloriesBurned" json:"caloriesBurned"`
	LoggedAt       time.Time `bson:"loggedAt" json:"loggedAt"`
}

// WorkoutLog holds a date's completed exercises, persisted wholesale.
type WorkoutLog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"-"`
	UserID    primitive.ObjectID  `bson:"userId" json:"-"`
	Date      string              `bson:"date" json:"date"`
	Focus     string              `bson:"focus,omitempty" json:"focus,omitempty"`
	Completed []CompletedExercise `bson:"completed" json:"completed"`
}
