package database

import (
	"fitcoach/internal/models"
	"log"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Connection{},
		&models.ExerciseType{},
		&models.WorkoutPlan{},
		&models.WorkoutDay{},
		&models.ExerciseInstance{},
		&models.NutritionPlan{},
		&models.NutritionDay{},
		&models.Meal{},
		&models.Food{},
		&models.WorkoutPlanAssignment{},
		&models.NutritionPlanAssignment{},
		&models.AdherenceRecord{},
		&models.MealCompletion{},
		&models.ChatMessage{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
