package models

import "gorm.io/gorm"

type WorkoutPlan struct {
	gorm.Model
	Name              string       `json:"name" example:"Phase 1: Hypertrophy"`
	Description       string       `json:"description"`
	OwnerID           uint         `json:"owner_id"`
	Owner             User         `gorm:"foreignKey:OwnerID" json:"-"`
	Difficulty        string       `json:"difficulty" example:"intermediate"`
	EstimatedCalories float64      `json:"estimated_calories"`
	IsActive          bool         `gorm:"default:true" json:"is_active"`
	Days              []WorkoutDay `gorm:"constraint:OnDelete:CASCADE" json:"days,omitempty"`
}

type WorkoutDay struct {
	gorm.Model
	WorkoutPlanID     uint               `json:"workout_plan_id"`
	DayNumber         int                `json:"day_number" example:"1"`
	IsRestDay         bool               `json:"is_rest_day"`
	EstimatedCalories float64            `json:"estimated_calories"`
	Duration          int                `json:"duration" example:"45"`
	Exercises         []ExerciseInstance `gorm:"constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

// ExerciseInstance is one exercise slot within a workout day. EstimatedCalories
// on the instance is authoritative; day-level totals are derived from it.
type ExerciseInstance struct {
	gorm.Model
	WorkoutDayID      uint         `json:"workout_day_id"`
	ExerciseTypeID    uint         `json:"exercise_type_id"`
	ExerciseType      ExerciseType `gorm:"foreignKey:ExerciseTypeID" json:"exercise_type,omitempty"`
	Order             int          `gorm:"column:exercise_order" json:"order"`
	TargetSets        int          `json:"target_sets"`
	TargetReps        int          `json:"target_reps"`
	TargetDuration    int          `json:"target_duration"`
	EstimatedCalories float64      `json:"estimated_calories"`
	Notes             string       `json:"notes"`
}
