package models

import "gorm.io/gorm"

// ExerciseType is a catalog entry referenced by exercise instances inside
// workout days. CreatedBy is zero for seeded global entries.
type ExerciseType struct {
	gorm.Model
	Name              string  `json:"name" example:"Barbell Squat"`
	MuscleGroup       string  `json:"muscle_group" example:"legs"`
	Equipment         string  `json:"equipment" example:"barbell"`
	CaloriesPerMinute float64 `json:"calories_per_minute" example:"8.5"`
	VideoURL          string  `json:"video_url"`
	CreatedBy         uint    `json:"created_by"`
}
