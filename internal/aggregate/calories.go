package aggregate

import "github.com/miguelofoliveir/pandafit-frontend/internal/model"

// TotalCalories sums the calories of foods.
func TotalCalories(foods []model.FoodItem) int {
	total := 0
	for _, f := range foods {
		total += f.Calories
	}
	return total
}

// MealCalories sums the calories of all foods across meals.
func MealCalories(meals []model.Meal) int {
	total := 0
	for _, m := range meals {
		total += TotalCalories(m.Foods)
	}
	return total
}
