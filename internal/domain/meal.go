package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealSlot is the fixed meal enumeration. AI plans carry exactly one entry
// per slot; manual plans may hold any number per slot.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// MealSlots lists the slots in display order. Aggregation iterates this.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack}

// ValidSlot reports whether s is one of the fixed slots.
func ValidSlot(s MealSlot) bool {
	for _, slot := range MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// FoodEntry is a single food item attributed to a meal slot.
// Manual entries carry their own macro fields; AI entries may not (see
// EstimateMacros in ledger.go).
type FoodEntry struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Calories    float64  `bson:"calories" json:"calories"`
	Protein     float64  `bson:"protein" json:"protein"`
	Carbs       float64  `bson:"carbs" json:"carbs"`
	Fat         float64  `bson:"fat" json:"fat"`
	ServingSize string   `bson:"servingSize,omitempty" json:"servingSize,omitempty"`
	Slot        MealSlot `bson:"slot" json:"slot"`
}

// GeneratedMeal is one slot of an AI meal plan.
type GeneratedMeal struct {
	Menu      string  `bson:"menu" json:"menu"`
	Calories  float64 `bson:"calories" json:"calories"`
	Time      string  `bson:"time,omitempty" json:"time,omitempty"`
	Reasoning string  `bson:"reasoning,omitempty" json:"reasoning,omitempty"`
	Portions  string  `bson:"portions,omitempty" json:"portions,omitempty"`
	// Macro grams are optional; zero means "estimate from calories".
	Protein float64 `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs   float64 `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fat     float64 `bson:"fat,omitempty" json:"fat,omitempty"`
}

// GeneratedMealPlan is the per-day AI plan. GenerationID is minted on every
// (re)generation so consumption marks from an older plan become inert
// orphans instead of pre-consuming the new plan.
type GeneratedMealPlan struct {
	ID            primitive.ObjectID         `bson:"_id,omitempty" json:"-"`
	UserID        primitive.ObjectID         `bson:"userId" json:"-"`
	Date          string                     `bson:"date" json:"date"`
	GenerationID  string                     `bson:"generationId" json:"generationId"`
	Meals         map[MealSlot]GeneratedMeal `bson:"meals" json:"meals"`
	TotalCalories float64                    `bson:"totalCalories" json:"totalCalories"`
	NutritionTips string                     `bson:"nutritionTips,omitempty" json:"nutritionTips,omitempty"`
	HydrationGoal string                     `bson:"hydrationGoal,omitempty" json:"hydrationGoal,omitempty"`
	Fallback      bool                       `bson:"fallback" json:"fallback"`
	GeneratedAt   time.Time                  `bson:"generatedAt" json:"generatedAt"`
}

// EntryID is the identity of a slot's synthesized food entry. Embedding the
// generation ID scopes marks to this exact plan.
func (p *GeneratedMealPlan) EntryID(slot MealSlot) string {
	return p.GenerationID + ":" + string(slot)
}

// ManualMealPlan holds the user-built plan for one day, keyed per slot.
// Persisted wholesale on every edit.
type ManualMealPlan struct {
	ID      primitive.ObjectID       `bson:"_id,omitempty" json:"-"`
	UserID  primitive.ObjectID       `bson:"userId" json:"-"`
	Date    string                   `bson:"date" json:"date"`
	Entries map[MealSlot][]FoodEntry `bson:"entries" json:"entries"`
}

// Entry finds a manual entry by ID across all slots.
func (p *ManualMealPlan) Entry(id string) (FoodEntry, bool) {
	for _, entries := range p.Entries {
		for _, e := range entries {
			if e.ID == id {
				return e, true
			}
		}
	}
	return FoodEntry{}, false
}
