package models

// Bulk update payloads. Pointer slices carry the unset-vs-empty distinction:
// a nil slice leaves that level of the stored tree untouched, an empty slice
// deletes every child at that level. An entry with ID == 0 creates a new node;
// a non-zero ID updates the stored node with that id under the same parent.

type WorkoutPlanBulkPayload struct {
	Name              *string              `json:"name"`
	Description       *string              `json:"description"`
	Difficulty        *string              `json:"difficulty"`
	EstimatedCalories *float64             `json:"estimated_calories"`
	IsActive          *bool                `json:"is_active"`
	Days              *[]WorkoutDayPayload `json:"days"`
}

type WorkoutDayPayload struct {
	ID                uint                       `json:"id"`
	DayNumber         int                        `json:"day_number" binding:"required"`
	IsRestDay         bool                       `json:"is_rest_day"`
	EstimatedCalories *float64                   `json:"estimated_calories"`
	Duration          int                        `json:"duration"`
	Exercises         *[]ExerciseInstancePayload `json:"exercises"`
}

type ExerciseInstancePayload struct {
	ID                uint    `json:"id"`
	ExerciseTypeID    uint    `json:"exercise_type_id" binding:"required"`
	Order             int     `json:"order"`
	TargetSets        int     `json:"target_sets"`
	TargetReps        int     `json:"target_reps"`
	TargetDuration    int     `json:"target_duration"`
	EstimatedCalories float64 `json:"estimated_calories"`
	Notes             string  `json:"notes"`
}

type NutritionPlanBulkPayload struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	IsActive    *bool                  `json:"is_active"`
	Days        *[]NutritionDayPayload `json:"days"`
}

type NutritionDayPayload struct {
	ID      uint           `json:"id"`
	Weekday string         `json:"weekday" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Meals   *[]MealPayload `json:"meals"`
}

// MealPayload macro fields are only consulted when Foods is nil; when foods
// are supplied the meal totals are recomputed from them.
type MealPayload struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name" binding:"required"`
	Time     string         `json:"time" binding:"required"`
	Calories *float64       `json:"calories"`
	Protein  *float64       `json:"protein"`
	Carbs    *float64       `json:"carbs"`
	Fat      *float64       `json:"fat"`
	Fiber    *float64       `json:"fiber"`
	Foods    *[]FoodPayload `json:"foods"`
}

type FoodPayload struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name" binding:"required"`
	Quantity float64  `json:"quantity" binding:"required"`
	Unit     string   `json:"unit"`
	Calories float64  `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Fiber    *float64 `json:"fiber"`
}

// MealCompletionRequest is the body of the meal completion endpoint.
// Date defaults to today (UTC) when omitted.
type MealCompletionRequest struct {
	Date             string   `json:"date"`
	Completed        *bool    `json:"completed"`
	CaloriesConsumed *float64 `json:"calories_consumed"`
	ProteinConsumed  *float64 `json:"protein_consumed"`
	CarbsConsumed    *float64 `json:"carbs_consumed"`
	FatConsumed      *float64 `json:"fat_consumed"`
	Notes            string   `json:"notes"`
}
