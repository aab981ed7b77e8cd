package services

import (
	"math"

	"fitcoach/internal/models"
)

// NutritionTotals aggregates the five tracked macro fields. Summation is
// per-field and order-independent; missing optionals are zero.
type NutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

func SumFoodTotals(foods []models.Food) NutritionTotals {
	var t NutritionTotals
	for _, f := range foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fat += f.Fat
		t.Fiber += f.Fiber
	}
	return t
}

func SumMealTotals(meals []models.Meal) NutritionTotals {
	var t NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
		t.Fiber += m.Fiber
	}
	return t
}

func SumExerciseCalories(exercises []models.ExerciseInstance) float64 {
	var total float64
	for _, e := range exercises {
		total += e.EstimatedCalories
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
