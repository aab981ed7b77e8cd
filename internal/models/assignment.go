package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AssignmentActive    = "active"
	AssignmentCompleted = "completed"
	AssignmentPaused    = "paused"
	AssignmentCancelled = "cancelled"
)

type WorkoutPlanAssignment struct {
	gorm.Model
	WorkoutPlanID uint        `json:"workout_plan_id"`
	WorkoutPlan   WorkoutPlan `gorm:"foreignKey:WorkoutPlanID" json:"-"`
	UserID        uint        `json:"user_id"`
	User          User        `gorm:"foreignKey:UserID" json:"-"`
	AssignedBy    uint        `json:"assigned_by"`
	Status        string      `gorm:"default:active" json:"status"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
}

// NutritionPlanAssignment carries a derived ProgressPercentage: the mean of
// adherence percentages across its records, recomputed whenever one changes.
type NutritionPlanAssignment struct {
	gorm.Model
	NutritionPlanID    uint              `json:"nutrition_plan_id"`
	NutritionPlan      NutritionPlan     `gorm:"foreignKey:NutritionPlanID" json:"-"`
	UserID             uint              `json:"user_id"`
	User               User              `gorm:"foreignKey:UserID" json:"-"`
	AssignedBy         uint              `json:"assigned_by"`
	Status             string            `gorm:"default:active" json:"status"`
	StartDate          time.Time         `json:"start_date"`
	EndDate            *time.Time        `json:"end_date,omitempty"`
	ProgressPercentage float64           `json:"progress_percentage"`
	AdherenceRecords   []AdherenceRecord `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
