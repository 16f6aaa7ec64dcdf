package model

import "testing"

func TestNormalizeIngredient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase", in: "chicken", want: "Chicken"},
		{name: "uppercase", in: "CHICKEN", want: "Chicken"},
		{name: "mixed case phrase", in: "cHiCkEn BREAST", want: "Chicken breast"},
		{name: "already normalized", in: "Rice", want: "Rice"},
		{name: "surrounding whitespace", in: "  basil  ", want: "Basil"},
		{name: "empty", in: "", want: ""},
		{name: "single rune", in: "x", want: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIngredient(tt.in); got != tt.want {
				t.Errorf("NormalizeIngredient(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewMealNormalizesIngredients(t *testing.T) {
	meal := NewMeal("Chicken Curry", "Lunch", []string{"chicken", "RICE", "green chili"},
		"spicy", 7.5, "", "Mess A", "admin@dorm.edu")

	want := []string{"Chicken", "Rice", "Green chili"}
	if len(meal.Ingredients) != len(want) {
		t.Fatalf("got %d ingredients, want %d", len(meal.Ingredients), len(want))
	}
	for i, ing := range want {
		if meal.Ingredients[i] != ing {
			t.Errorf("ingredient %d = %q, want %q", i, meal.Ingredients[i], ing)
		}
	}
	if meal.Likes != 0 || len(meal.LikedBy) != 0 || len(meal.RequestedBy) != 0 {
		t.Errorf("new meal social state not zeroed: likes=%d likedBy=%v requestedBy=%v",
			meal.Likes, meal.LikedBy, meal.RequestedBy)
	}
}
