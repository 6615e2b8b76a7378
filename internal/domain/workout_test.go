package domain

import "testing"

func TestCaloriesPerRep(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"Push Up", 2.5},
		{"Incline Push-Up", 2.5},
		{"Jump Squat", 3.5},
		{"Burpee", 4.5},
		{"Mountain Climber", 3.0}, // no table entry, default
	}
	for _, c := range cases {
		if got := CaloriesPerRep(c.name); got != c.want {
			t.Errorf("CaloriesPerRep(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestExerciseCalories(t *testing.T) {
	// 45 push-ups at reference weight: 2.5 * 45 = 112.5, rounds to 113.
	if got := ExerciseCalories("Push Up", 45, 70); got != 113 {
		t.Errorf("45 push-ups at 70kg = %v, want 113", got)
	}
	// Burn scales linearly with body weight.
	if got := ExerciseCalories("Push Up", 10, 35); got != 13 {
		t.Errorf("10 push-ups at 35kg = %v, want 13", got)
	}
	// Zero weight falls back to the reference weight.
	if got := ExerciseCalories("Squat", 20, 0); got != 70 {
		t.Errorf("20 squats at unknown weight = %v, want 70", got)
	}
	if got := ExerciseCalories("Squat", 0, 70); got != 0 {
		t.Errorf("zero reps = %v, want 0", got)
	}
}

func TestParseSetSpec(t *testing.T) {
	cases := []struct {
		spec string
		want int
	}{
		{"3x15", 45},
		{"4x10", 40},
		{"5X5", 25},
		{" 3 x 12 ", 36},
		{"3x45 seconds", 30}, // duration, falls back to default
		{"3x45 detik", 30},
		{"1x10 minutes", 30},
		{"", 30},
		{"nonsense", 30},
		{"0x10", 30},
	}
	for _, c := range cases {
		if got := ParseSetSpec(c.spec); got != c.want {
			t.Errorf("ParseSetSpec(%q) = %v, want %v", c.spec, got, c.want)
		}
	}
}

func TestWorkoutPlanExerciseLookup(t *testing.T) {
	plan := &GeneratedWorkoutPlan{
		Exercises: []PlannedExercise{
			{Name: "Push Up", Sets: "3x15"},
			{Name: "Plank", Sets: "3x45 seconds"},
		},
	}
	ex, ok := plan.Exercise("push up")
	if !ok || ex.Sets != "3x15" {
		t.Fatalf("lookup push up: got %+v ok=%v", ex, ok)
	}
	if _, ok := plan.Exercise("Squat"); ok {
		t.Error("lookup squat should miss")
	}
}
