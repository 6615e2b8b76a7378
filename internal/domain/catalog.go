package domain

import "strings"

// CatalogFood is a built-in food the user can add to a manual plan.
type CatalogFood struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	SodiumMg    float64 `json:"sodiumMg"`
	ServingSize string  `json:"servingSize"`
	Category    string  `json:"category"`
}

// FoodCatalog is the quick-pick food list, per 100g unless noted.
var FoodCatalog = []CatalogFood{
	{ID: "1", Name: "Grilled Chicken Breast", Calories: 231, Protein: 43.5, Carbs: 0, Fat: 5, Fiber: 0, Sugar: 0, SodiumMg: 104, ServingSize: "100g", Category: "Protein"},
	{ID: "2", Name: "Brown Rice", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8, Fiber: 3.5, Sugar: 0.7, SodiumMg: 7, ServingSize: "100g", Category: "Carbohydrates"},
	{ID: "3", Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, Sugar: 1.5, SodiumMg: 33, ServingSize: "100g", Category: "Vegetables"},
	{ID: "4", Name: "Salmon Fillet", Calories: 208, Protein: 22, Carbs: 0, Fat: 12, Fiber: 0, Sugar: 0, SodiumMg: 59, ServingSize: "100g", Category: "Protein"},
	{ID: "5", Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Fiber: 3, Sugar: 4.2, SodiumMg: 7, ServingSize: "100g", Category: "Carbohydrates"},
	{ID: "6", Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.2, SodiumMg: 36, ServingSize: "100g", Category: "Dairy"},
	{ID: "7", Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, Fiber: 12, Sugar: 4.4, SodiumMg: 1, ServingSize: "100g", Category: "Nuts"},
	{ID: "8", Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Sugar: 0.4, SodiumMg: 79, ServingSize: "100g", Category: "Vegetables"},
	{ID: "9", Name: "Oatmeal", Calories: 68, Protein: 2.4, Carbs: 12, Fat: 1.4, Fiber: 1.7, Sugar: 0.5, SodiumMg: 49, ServingSize: "100g", Category: "Carbohydrates"},
}

// SearchFoods filters the catalog by name or category substring,
// case-insensitive. An empty query returns the whole catalog.
func SearchFoods(query string) []CatalogFood {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]CatalogFood, len(FoodCatalog))
		copy(out, FoodCatalog)
		return out
	}
	var out []CatalogFood
	for _, f := range FoodCatalog {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.Category), q) {
			out = append(out, f)
		}
	}
	return out
}

// CatalogExercise is a built-in exercise with a typical session estimate.
type CatalogExercise struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	DurationMin    int      `json:"durationMin"`
	CaloriesBurned float64  `json:"caloriesBurned"`
	Difficulty     string   `json:"difficulty"`
	Equipment      []string `json:"equipment"`
}

// ExerciseCatalog is the built-in exercise list shown alongside generated
// plans. CaloriesBurned is the typical-session figure, not the per-rep rate.
var ExerciseCatalog = []CatalogExercise{
	{ID: "1", Name: "Push-ups", Category: "Strength", Description: "Upper body strengthening exercise", DurationMin: 15, CaloriesBurned: 50, Difficulty: "beginner", Equipment: []string{}},
	{ID: "2", Name: "Running", Category: "Cardio", Description: "Cardiovascular endurance exercise", DurationMin: 30, CaloriesBurned: 300, Difficulty: "intermediate", Equipment: []string{"Running shoes"}},
	{ID: "3", Name: "Squats", Category: "Strength", Description: "Lower body strengthening exercise", DurationMin: 20, CaloriesBurned: 80, Difficulty: "beginner", Equipment: []string{}},
	{ID: "4", Name: "Yoga Flow", Category: "Flexibility", Description: "Full body stretching and strengthening", DurationMin: 45, CaloriesBurned: 150, Difficulty: "intermediate", Equipment: []string{"Yoga mat"}},
	{ID: "5", Name: "Deadlifts", Category: "Strength", Description: "Full body compound movement", DurationMin: 25, CaloriesBurned: 120, Difficulty: "advanced", Equipment: []string{"Barbell", "Weights"}},
}

// ListExercises returns a copy of the exercise catalog.
func ListExercises() []CatalogExercise {
	out := make([]CatalogExercise, len(ExerciseCatalog))
	copy(out, ExerciseCatalog)
	return out
}

// AsFoodEntry converts a catalog food into a manual plan entry. The caller
// supplies the entry ID and slot.
func (f CatalogFood) AsFoodEntry(id string, slot MealSlot) FoodEntry {
	return FoodEntry{
		ID:          id,
		Name:        f.Name,
		Calories:    f.Calories,
		Protein:     f.Protein,
		Carbs:       f.Carbs,
		Fat:         f.Fat,
		ServingSize: f.ServingSize,
		Slot:        slot,
	}
}
