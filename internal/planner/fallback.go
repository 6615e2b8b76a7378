package planner

import "math"

// FallbackMealPlan is the static plan served when the model is unreachable or
// returns garbage. Slot calories follow a 25/35/30/10 split of the daily
// target so the plan still matches the user's profile.
func FallbackMealPlan(targetCalories float64) MealPlanPayload {
	if targetCalories <= 0 {
		targetCalories = 2000
	}
	share := func(fraction float64) float64 {
		return math.Round(targetCalories * fraction)
	}
	return MealPlanPayload{
		Breakfast: &MealPayload{
			Menu:     "Oatmeal with banana and a boiled egg",
			Calories: share(0.25),
			Time:     "07:00",
			Portions: "1 bowl oatmeal, 1 banana, 1 egg",
		},
		Lunch: &MealPayload{
			Menu:     "Grilled chicken breast with rice and vegetables",
			Calories: share(0.35),
			Time:     "12:30",
			Portions: "150g chicken, 1 cup rice, mixed vegetables",
		},
		Dinner: &MealPayload{
			Menu:     "Baked fish with sweet potato and salad",
			Calories: share(0.30),
			Time:     "19:00",
			Portions: "150g fish, 1 medium sweet potato, salad",
		},
		Snack: &MealPayload{
			Menu:     "Greek yogurt with almonds",
			Calories: share(0.10),
			Time:     "16:00",
			Portions: "1 cup yogurt, small handful almonds",
		},
		TotalCalories: share(0.25) + share(0.35) + share(0.30) + share(0.10),
		NutritionTips: "Eat slowly, favor whole foods, and keep added sugar low.",
		HydrationGoal: "8 glasses of water",
	}
}

// FallbackWorkoutPlan is the static full-body session served when generation
// fails.
func FallbackWorkoutPlan() WorkoutPlanPayload {
	return WorkoutPlanPayload{
		Focus:     "Full Body",
		Duration:  "30 minutes",
		Intensity: "Moderate",
		CoachTips: "Rest 60 seconds between sets and stop if form breaks down.",
		Exercises: []ExercisePayload{
			{Name: "Push Up", Sets: "3x15", Type: "strength"},
			{Name: "Squat", Sets: "3x20", Type: "strength"},
			{Name: "Plank", Sets: "3x45 seconds", Duration: "45 seconds", Type: "core"},
			{Name: "Sit Up", Sets: "3x15", Type: "core"},
			{Name: "Jumping Jack", Sets: "3x30", Type: "cardio"},
		},
	}
}
