package domain

import "testing"

func TestSearchFoods(t *testing.T) {
	all := SearchFoods("")
	if len(all) != len(FoodCatalog) {
		t.Errorf("empty query returned %d foods, want %d", len(all), len(FoodCatalog))
	}

	byName := SearchFoods("chicken")
	if len(byName) != 1 || byName[0].Name != "Grilled Chicken Breast" {
		t.Errorf("search chicken = %+v", byName)
	}

	byCategory := SearchFoods("vegetables")
	if len(byCategory) != 2 {
		t.Errorf("search vegetables returned %d foods, want 2", len(byCategory))
	}

	if got := SearchFoods("pizza"); len(got) != 0 {
		t.Errorf("search pizza = %+v, want none", got)
	}
}

func TestAsFoodEntry(t *testing.T) {
	entry := FoodCatalog[0].AsFoodEntry("abc", SlotLunch)
	if entry.ID != "abc" || entry.Slot != SlotLunch {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Name != FoodCatalog[0].Name || entry.Calories != FoodCatalog[0].Calories {
		t.Errorf("entry should carry catalog values, got %+v", entry)
	}
}
