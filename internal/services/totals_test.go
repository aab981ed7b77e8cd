package services

import (
	"testing"

	"fitcoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSumFoodTotals(t *testing.T) {
	foods := []models.Food{
		{Calories: 300, Protein: 10, Carbs: 50, Fat: 5, Fiber: 8},
		{Calories: 150, Protein: 20, Carbs: 3, Fat: 2, Fiber: 0},
	}

	totals := SumFoodTotals(foods)

	assert.Equal(t, 450.0, totals.Calories)
	assert.Equal(t, 30.0, totals.Protein)
	assert.Equal(t, 53.0, totals.Carbs)
	assert.Equal(t, 7.0, totals.Fat)
	assert.Equal(t, 8.0, totals.Fiber)
}

func TestSumFoodTotalsEmpty(t *testing.T) {
	totals := SumFoodTotals(nil)
	assert.Equal(t, NutritionTotals{}, totals)
}

func TestSumFoodTotalsOrderIndependent(t *testing.T) {
	foods := []models.Food{
		{Calories: 100, Protein: 5},
		{Calories: 200, Protein: 15},
		{Calories: 50, Protein: 2},
	}
	reversed := []models.Food{foods[2], foods[1], foods[0]}

	assert.Equal(t, SumFoodTotals(foods), SumFoodTotals(reversed))
}

func TestSumMealTotals(t *testing.T) {
	meals := []models.Meal{
		{Calories: 450, Protein: 30, Carbs: 55, Fat: 10, Fiber: 9},
		{Calories: 500, Protein: 45, Carbs: 40, Fat: 12, Fiber: 4},
		{Calories: 0},
	}

	totals := SumMealTotals(meals)

	assert.Equal(t, 950.0, totals.Calories)
	assert.Equal(t, 75.0, totals.Protein)
	assert.Equal(t, 95.0, totals.Carbs)
	assert.Equal(t, 22.0, totals.Fat)
	assert.Equal(t, 13.0, totals.Fiber)
}

func TestSumExerciseCalories(t *testing.T) {
	exercises := []models.ExerciseInstance{
		{EstimatedCalories: 300},
		{EstimatedCalories: 200},
		{EstimatedCalories: 0},
	}

	assert.Equal(t, 500.0, SumExerciseCalories(exercises))
	assert.Equal(t, 0.0, SumExerciseCalories(nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 75.0, round2(75.0))
	assert.Equal(t, 66.67, round2(200.0/3.0))
	assert.Equal(t, 33.33, round2(100.0/3.0))
	assert.Equal(t, 0.0, round2(0))
}

func TestFloatOrZero(t *testing.T) {
	assert.Equal(t, 0.0, floatOrZero(nil))
	v := 12.5
	assert.Equal(t, 12.5, floatOrZero(&v))
}
