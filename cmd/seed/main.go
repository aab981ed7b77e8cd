package main

import (
	"fitcoach/database"
	"fitcoach/internal/models"
	"fitcoach/internal/utils"
	"flag"
	"log"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

// Seeds the exercise type catalog and, with -demo, a coach/trainee pair
// with an accepted connection for local development.
func main() {
	demo := flag.Bool("demo", false, "Also create a demo coach and trainee with an accepted connection")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if err := utils.SeedExerciseTypes(database.DB); err != nil {
		log.Fatalf("Failed to seed exercise types: %v", err)
	}
	log.Println("Exercise type catalog seeded")

	if !*demo {
		return
	}

	coach, err := seedUser("Demo Coach", "coach@fitcoach.local", models.RoleCoach)
	if err != nil {
		log.Fatalf("Failed to seed coach: %v", err)
	}
	trainee, err := seedUser("Demo Trainee", "trainee@fitcoach.local", models.RoleTrainee)
	if err != nil {
		log.Fatalf("Failed to seed trainee: %v", err)
	}

	connection := models.Connection{
		CoachID:   coach.ID,
		TraineeID: trainee.ID,
		Status:    models.ConnectionAccepted,
	}
	err = database.DB.
		Where("coach_id = ? AND trainee_id = ?", coach.ID, trainee.ID).
		FirstOrCreate(&connection).Error
	if err != nil {
		log.Fatalf("Failed to seed connection: %v", err)
	}

	log.Printf("Demo users ready: %s / %s (password: password123)", coach.Email, trainee.Email)
}

func seedUser(name, email, role string) (*models.User, error) {
	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}

	hash, err := utils.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	user = models.User{Name: name, Email: email, Password: hash, Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
