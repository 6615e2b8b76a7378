package planner

import (
	"errors"
	"testing"
)

func TestExtractJSONStripsFencesAndProse(t *testing.T) {
	raw := "Sure! Here is your plan:\n```json\n{\"day\": \"Monday\"}\n```\nEnjoy your workout!"
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != `{"day": "Monday"}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONBareObject(t *testing.T) {
	got, err := ExtractJSON(`{"a":1}`)
	if err != nil || got != `{"a":1}` {
		t.Errorf("got %q, err %v", got, err)
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("I could not generate a plan today, sorry.")
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("want ErrNoJSON, got %v", err)
	}
}

func TestParseWorkoutPlan(t *testing.T) {
	raw := "Here you go:\n```json\n" +
		`{"day":"Monday","focus":"Upper Body","exercises":[{"name":"Push Up","sets":"3x15","type":"strength"}]}` +
		"\n```"
	payload, err := ParseWorkoutPlan(raw)
	if err != nil {
		t.Fatalf("ParseWorkoutPlan: %v", err)
	}
	if payload.Day != "Monday" || payload.Focus != "Upper Body" {
		t.Errorf("payload = %+v", payload)
	}
	if len(payload.Exercises) != 1 || payload.Exercises[0].Sets != "3x15" {
		t.Errorf("exercises = %+v", payload.Exercises)
	}
}

func TestParseMealPlan(t *testing.T) {
	raw := `Of course. {"breakfast":{"menu":"Oatmeal","calories":350},"totalCalories":350,"hydrationGoal":"8 glasses"} Let me know!`
	payload, err := ParseMealPlan(raw)
	if err != nil {
		t.Fatalf("ParseMealPlan: %v", err)
	}
	if payload.Breakfast == nil || payload.Breakfast.Calories != 350 {
		t.Errorf("breakfast = %+v", payload.Breakfast)
	}
	if payload.TotalCalories != 350 || payload.HydrationGoal != "8 glasses" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestParseMealPlanMalformed(t *testing.T) {
	if _, err := ParseMealPlan(`{"breakfast": not json}`); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestFallbackMealPlan(t *testing.T) {
	plan := FallbackMealPlan(2000)
	if plan.Breakfast == nil || plan.Lunch == nil || plan.Dinner == nil || plan.Snack == nil {
		t.Fatal("fallback must fill all four slots")
	}
	sum := plan.Breakfast.Calories + plan.Lunch.Calories + plan.Dinner.Calories + plan.Snack.Calories
	if sum != plan.TotalCalories {
		t.Errorf("slot sum %v != total %v", sum, plan.TotalCalories)
	}
	if plan.TotalCalories != 2000 {
		t.Errorf("total = %v, want 2000", plan.TotalCalories)
	}

	// An unset target gets the 2000 kcal default.
	plan = FallbackMealPlan(0)
	if plan.TotalCalories != 2000 {
		t.Errorf("default total = %v, want 2000", plan.TotalCalories)
	}
}

func TestFallbackWorkoutPlan(t *testing.T) {
	plan := FallbackWorkoutPlan()
	if len(plan.Exercises) != 5 {
		t.Fatalf("fallback has %d exercises, want 5", len(plan.Exercises))
	}
	for _, ex := range plan.Exercises {
		if ex.Name == "" || ex.Sets == "" {
			t.Errorf("exercise missing name or sets: %+v", ex)
		}
	}
}
