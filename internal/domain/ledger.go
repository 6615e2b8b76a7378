package domain

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateKeyLayout is the calendar-day key format used across all per-day
// records, in the user's local timezone.
const DateKeyLayout = "2006-01-02"

// DateKey renders t as a calendar-day key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ValidDateKey reports whether s parses as a calendar-day key.
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateKeyLayout, s)
	return err == nil
}

// Provenance tags whether an entry came from the AI plan or manual input.
type Provenance string

const (
	ProvenanceAI     Provenance = "ai"
	ProvenanceManual Provenance = "manual"
)

// MarkKey builds the composite key recording "this entry counts today".
// The single source of the key schema; call sites never concatenate.
func MarkKey(p Provenance, entryID string, slot MealSlot, date string) string {
	return fmt.Sprintf("%s-%s-%s-%s", p, entryID, slot, date)
}

// MarkSet is a date's consumption marks. Keys with no corresponding entry
// are inert: they never contribute to totals, so the set may accumulate
// orphans (e.g. from a superseded plan generation) without corrupting sums.
type MarkSet map[string]struct{}

// NewMarkSet builds a set from stored keys.
func NewMarkSet(keys []string) MarkSet {
	s := make(MarkSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s MarkSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Toggle flips a key and reports whether it is now present.
func (s MarkSet) Toggle(key string) bool {
	if s.Has(key) {
		delete(s, key)
		return false
	}
	s[key] = struct{}{}
	return true
}

// Keys returns the stored representation. Order is not significant.
func (s MarkSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// ConsumptionMarks is the persisted form of a date's MarkSet.
type ConsumptionMarks struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID primitive.ObjectID `bson:"userId" json:"-"`
	Date   string             `bson:"date" json:"date"`
	Keys   []string           `bson:"keys" json:"keys"`
}

// DailyNutritionRecord is the derived nutrition snapshot for one day.
// Exactly one exists per (user, date); recomputed from scratch and written
// wholesale, never patched field by field.
type DailyNutritionRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID         primitive.ObjectID `bson:"userId" json:"-"`
	Date           string             `bson:"date" json:"date"`
	Calories       float64            `bson:"calories" json:"calories"`
	Protein        float64            `bson:"protein" json:"protein"`
	Carbs          float64            `bson:"carbs" json:"carbs"`
	Fat            float64            `bson:"fat" json:"fat"`
	TargetCalories float64            `bson:"targetCalories" json:"targetCalories"`
}

// DailyWorkoutRecord is the derived activity snapshot for one day.
type DailyWorkoutRecord struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID             primitive.ObjectID `bson:"userId" json:"-"`
	Date               string             `bson:"date" json:"date"`
	CaloriesBurned     float64            `bson:"caloriesBurned" json:"caloriesBurned"`
	CompletedExercises int                `bson:"completedExercises" json:"completedExercises"`
	Focus              string             `bson:"focus,omitempty" json:"focus,omitempty"`
}

// DailyStats is one row of the rolling history view.
type DailyStats struct {
	Date           string  `json:"date"`
	CaloriesIn     float64 `json:"caloriesIn"`
	CaloriesBurned float64 `json:"caloriesBurned"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	WorkoutCount   int     `json:"workoutCount"`
	WorkoutFocus   string  `json:"workoutFocus"`
	NetCalories    float64 `json:"netCalories"`
}

// EstimateMacros splits calories 25% protein / 45% carbs / 30% fat by caloric
// density (protein and carbs 4 kcal/g, fat 9 kcal/g). Used for AI meals that
// arrive without explicit macro fields.
func EstimateMacros(calories float64) (protein, carbs, fat float64) {
	protein = math.Round(calories * 0.25 / 4)
	carbs = math.Round(calories * 0.45 / 4)
	fat = math.Round(calories * 0.30 / 9)
	return protein, carbs, fat
}

// ProgressPercent clamps a consumed/target ratio into [0,100].
// A target of zero or less is "no progress computable" and yields 0.
func ProgressPercent(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, consumed/target*100)
}

// AggregateNutrition derives the day's nutrition record from the current
// entry sets and marks. Only the active mode's entries feed the totals; the
// inactive mode's data stays persisted but invisible. Aggregation over empty
// inputs returns an all-zero record.
func AggregateNutrition(date string, target float64, mode PlanMode, generated *GeneratedMealPlan, manual *ManualMealPlan, marks MarkSet) DailyNutritionRecord {
	rec := DailyNutritionRecord{Date: date, TargetCalories: target}

	switch mode {
	case PlanModeManual:
		if manual == nil {
			return rec
		}
		for slot, entries := range manual.Entries {
			for _, e := range entries {
				if !marks.Has(MarkKey(ProvenanceManual, e.ID, slot, date)) {
					continue
				}
				rec.Calories += e.Calories
				rec.Protein += e.Protein
				rec.Carbs += e.Carbs
				rec.Fat += e.Fat
			}
		}
	default: // AI mode
		if generated == nil {
			return rec
		}
		for _, slot := range MealSlots {
			meal, ok := generated.Meals[slot]
			if !ok {
				continue
			}
			if !marks.Has(MarkKey(ProvenanceAI, generated.EntryID(slot), slot, date)) {
				continue
			}
			rec.Calories += meal.Calories
			if meal.Protein > 0 || meal.Carbs > 0 || meal.Fat > 0 {
				rec.Protein += meal.Protein
				rec.Carbs += meal.Carbs
				rec.Fat += meal.Fat
			} else {
				p, c, f := EstimateMacros(meal.Calories)
				rec.Protein += p
				rec.Carbs += c
				rec.Fat += f
			}
		}
	}
	return rec
}

// AggregateWorkout derives the day's activity record. Every logged exercise
// counts unconditionally: logging is consuming.
func AggregateWorkout(date string, log *WorkoutLog) DailyWorkoutRecord {
	rec := DailyWorkoutRecord{Date: date}
	if log == nil {
		return rec
	}
	rec.Focus = log.Focus
	rec.CompletedExercises = len(log.Completed)
	for _, ex := range log.Completed {
		rec.CaloriesBurned += ex.CaloriesBurned
	}
	return rec
}
