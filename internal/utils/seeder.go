package utils

import (
	"log"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

// SeedExerciseTypes inserts the starter catalog if none exists yet.
func SeedExerciseTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ExerciseType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Exercise type catalog already seeded (%d entries)", count)
		return nil
	}

	catalog := []models.ExerciseType{
		{Name: "Barbell Squat", MuscleGroup: "legs", Equipment: "barbell", CaloriesPerMinute: 8.5},
		{Name: "Deadlift", MuscleGroup: "back", Equipment: "barbell", CaloriesPerMinute: 9.0},
		{Name: "Bench Press", MuscleGroup: "chest", Equipment: "barbell", CaloriesPerMinute: 6.5},
		{Name: "Pull Up", MuscleGroup: "back", Equipment: "bodyweight", CaloriesPerMinute: 8.0},
		{Name: "Push Up", MuscleGroup: "chest", Equipment: "bodyweight", CaloriesPerMinute: 7.0},
		{Name: "Overhead Press", MuscleGroup: "shoulders", Equipment: "barbell", CaloriesPerMinute: 6.0},
		{Name: "Running", MuscleGroup: "cardio", Equipment: "none", CaloriesPerMinute: 11.0},
		{Name: "Rowing", MuscleGroup: "cardio", Equipment: "machine", CaloriesPerMinute: 10.0},
		{Name: "Plank", MuscleGroup: "core", Equipment: "bodyweight", CaloriesPerMinute: 4.0},
		{Name: "Lunges", MuscleGroup: "legs", Equipment: "dumbbell", CaloriesPerMinute: 7.5},
	}

	if err := db.Create(&catalog).Error; err != nil {
		log.Printf("Error seeding exercise types: %v", err)
		return err
	}

	log.Printf("Seeded %d exercise types", len(catalog))
	return nil
}
