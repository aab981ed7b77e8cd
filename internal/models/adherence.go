package models

import (
	"time"

	"gorm.io/gorm"
)

// AdherenceRecord is one derived summary per (assignment, calendar date).
// Every field except the keys is recomputed from MealCompletion rows plus the
// plan's current day-of-week structure; nothing here is snapshotted.
type AdherenceRecord struct {
	gorm.Model
	NutritionPlanAssignmentID uint             `gorm:"uniqueIndex:idx_assignment_date" json:"nutrition_plan_assignment_id"`
	Date                      time.Time        `gorm:"uniqueIndex:idx_assignment_date" json:"date"`
	TotalMeals                int              `json:"total_meals"`
	MealsCompleted            int              `json:"meals_completed"`
	AdherencePercentage       float64          `json:"adherence_percentage"`
	TotalCaloriesConsumed     float64          `json:"total_calories_consumed"`
	TotalCaloriesPlanned      float64          `json:"total_calories_planned"`
	MealCompletions           []MealCompletion `gorm:"constraint:OnDelete:CASCADE" json:"meal_completions,omitempty"`
}

// MealCompletion is the ground truth a trainee records for one meal occurrence.
type MealCompletion struct {
	gorm.Model
	AdherenceRecordID uint    `gorm:"uniqueIndex:idx_record_meal" json:"adherence_record_id"`
	MealID            uint    `gorm:"uniqueIndex:idx_record_meal" json:"meal_id"`
	Completed         bool    `gorm:"default:true" json:"completed"`
	CaloriesConsumed  float64 `json:"calories_consumed"`
	ProteinConsumed   float64 `json:"protein_consumed"`
	CarbsConsumed     float64 `json:"carbs_consumed"`
	FatConsumed       float64 `json:"fat_consumed"`
	Notes             string  `json:"notes"`
}
