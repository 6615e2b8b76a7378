package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted by the profile formulas.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel maps onto the TDEE multipliers in profile.go.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

// Goal drives the calorie adjustment and macro split.
type Goal string

const (
	GoalWeightLoss Goal = "weight-loss"
	GoalWeightGain Goal = "weight-gain"
	GoalMuscleGain Goal = "muscle-gain"
)

// PlanMode selects which plan's entries feed the visible daily totals.
// Both modes' data stay persisted regardless of the active mode.
type PlanMode string

const (
	PlanModeAI     PlanMode = "ai"
	PlanModeManual PlanMode = "manual"
)

// ValidGender reports whether g is a recognized gender value.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

// ValidActivityLevel reports whether a maps onto a TDEE multiplier.
func ValidActivityLevel(a ActivityLevel) bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// ValidGoal reports whether g is a recognized goal.
func ValidGoal(g Goal) bool {
	switch g {
	case GoalWeightLoss, GoalWeightGain, GoalMuscleGain:
		return true
	}
	return false
}

// User represents an account plus its health profile. The profile fields
// below DerivedAt are recomputed wholesale on every profile update.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // unique
	PasswordHash string             `bson:"passwordHash" json:"-"`

	WeightKg            float64       `bson:"weightKg" json:"weightKg"`
	HeightCm            float64       `bson:"heightCm" json:"heightCm"`
	Age                 int           `bson:"age" json:"age"`
	Gender              Gender        `bson:"gender" json:"gender"`
	ActivityLevel       ActivityLevel `bson:"activityLevel" json:"activityLevel"`
	Goal                Goal          `bson:"goal" json:"goal"`
	DietaryRestrictions []string      `bson:"dietaryRestrictions,omitempty" json:"dietaryRestrictions,omitempty"`
	Allergies           []string      `bson:"allergies,omitempty" json:"allergies,omitempty"`

	// Derived on profile update, never entered directly.
	BMI           float64 `bson:"bmi" json:"bmi"`
	IdealWeightKg float64 `bson:"idealWeightKg" json:"idealWeightKg"`
	DailyCalories float64 `bson:"dailyCalories" json:"dailyCalories"`
	ProteinTarget float64 `bson:"proteinTarget" json:"proteinTarget"`
	CarbsTarget   float64 `bson:"carbsTarget" json:"carbsTarget"`
	FatTarget     float64 `bson:"fatTarget" json:"fatTarget"`

	PlanMode         PlanMode  `bson:"planMode" json:"planMode"`
	ProfileCompleted bool      `bson:"profileCompleted" json:"profileCompleted"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ActivePlanMode defaults to the AI plan when the preference was never set.
func (u *User) ActivePlanMode() PlanMode {
	if u.PlanMode == PlanModeManual {
		return PlanModeManual
	}
	return PlanModeAI
}
