package domain

import "math"

// Profile math ported from the onboarding flow. Degenerate inputs (zero
// height, unknown activity level) yield degenerate numbers, not errors;
// callers display them as-is.

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalAdjustments = map[Goal]float64{
	GoalWeightLoss: -500, // ~1 lb per week
	GoalWeightGain: 500,
	GoalMuscleGain: 300, // lean gain
}

var goalMacroRatios = map[Goal]struct{ protein, carbs, fat float64 }{
	GoalWeightLoss: {0.35, 0.35, 0.30},
	GoalWeightGain: {0.25, 0.45, 0.30},
	GoalMuscleGain: {0.30, 0.40, 0.30},
}

// CalculateBMI returns kg/m² rounded to one decimal. Zero height gives +Inf,
// which downstream treats as cosmetic.
func CalculateBMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// CalculateIdealWeight uses the Devine formula (height converted to inches).
func CalculateIdealWeight(heightCm float64, gender Gender) float64 {
	inches := heightCm / 2.54
	base := 45.5
	if gender == GenderMale {
		base = 50
	}
	extra := math.Max(0, inches-60)
	return math.Round((base+2.3*extra)*10) / 10
}

// CalculateDailyCalories applies Mifflin-St Jeor, the activity multiplier and
// the goal adjustment, rounded to a whole kcal figure.
func CalculateDailyCalories(weightKg, heightCm float64, age int, gender Gender, level ActivityLevel, goal Goal) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	if gender == GenderMale {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	}
	tdee := bmr * activityMultipliers[level]
	return math.Round(tdee + goalAdjustments[goal])
}

// MacroTargets splits a calorie budget into protein/carbs/fat grams using the
// goal's ratio at 4/4/9 kcal per gram.
func MacroTargets(calories float64, goal Goal) (protein, carbs, fat float64) {
	r, ok := goalMacroRatios[goal]
	if !ok {
		r = goalMacroRatios[GoalMuscleGain]
	}
	protein = math.Round(calories * r.protein / 4)
	carbs = math.Round(calories * r.carbs / 4)
	fat = math.Round(calories * r.fat / 9)
	return protein, carbs, fat
}

// ApplyDerivedFields recomputes every derived profile figure from the raw
// measurements. Called after any profile mutation, including weight entries.
func (u *User) ApplyDerivedFields() {
	u.BMI = CalculateBMI(u.WeightKg, u.HeightCm)
	u.IdealWeightKg = CalculateIdealWeight(u.HeightCm, u.Gender)
	u.DailyCalories = CalculateDailyCalories(u.WeightKg, u.HeightCm, u.Age, u.Gender, u.ActivityLevel, u.Goal)
	u.ProteinTarget, u.CarbsTarget, u.FatTarget = MacroTargets(u.DailyCalories, u.Goal)
}
