package services

import (
	"testing"
	"time"

	"fitcoach/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
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
	require.NoError(t, err)

	return db
}

func ptrFloat(v float64) *float64 { return &v }
func ptrBool(v bool) *bool        { return &v }
func ptrString(v string) *string  { return &v }

// seedNutritionPlan creates a plan with one monday day of four meals, each
// built from foods so the stored totals are consistent. Planned calories for
// the day come to 2000.
func seedNutritionPlan(t *testing.T, db *gorm.DB) *models.NutritionPlan {
	t.Helper()

	plan := models.NutritionPlan{
		Name:        "Cutting 2000 kcal",
		Description: "Test plan",
		OwnerID:     1,
		IsActive:    true,
		Days: []models.NutritionDay{
			{
				Weekday:       "monday",
				TotalCalories: 2000,
				TotalProtein:  150,
				Meals: []models.Meal{
					{
						Name: "Breakfast", Time: "08:00:00", Calories: 450, Protein: 30,
						Foods: []models.Food{
							{Name: "Oats", Quantity: 80, Unit: "g", Calories: 300, Protein: 10},
							{Name: "Whey", Quantity: 30, Unit: "g", Calories: 150, Protein: 20},
						},
					},
					{
						Name: "Lunch", Time: "12:30:00", Calories: 500, Protein: 45,
						Foods: []models.Food{
							{Name: "Chicken breast", Quantity: 200, Unit: "g", Calories: 330, Protein: 40},
							{Name: "Rice", Quantity: 60, Unit: "g", Calories: 170, Protein: 5},
						},
					},
					{
						Name: "Snack", Time: "16:00:00", Calories: 550, Protein: 25,
						Foods: []models.Food{
							{Name: "Greek yogurt", Quantity: 200, Unit: "g", Calories: 200, Protein: 20},
							{Name: "Almonds", Quantity: 50, Unit: "g", Calories: 350, Protein: 5},
						},
					},
					{
						Name: "Dinner", Time: "19:30:00", Calories: 500, Protein: 50,
						Foods: []models.Food{
							{Name: "Salmon", Quantity: 180, Unit: "g", Calories: 380, Protein: 40},
							{Name: "Broccoli", Quantity: 200, Unit: "g", Calories: 120, Protein: 10},
						},
					},
				},
			},
		},
	}
	require.NoError(t, db.Create(&plan).Error)
	return &plan
}

func seedNutritionAssignment(t *testing.T, db *gorm.DB, planID uint) *models.NutritionPlanAssignment {
	t.Helper()

	assignment := models.NutritionPlanAssignment{
		NutritionPlanID: planID,
		UserID:          2,
		AssignedBy:      1,
		Status:          models.AssignmentActive,
		StartDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&assignment).Error)
	return &assignment
}

func seedWorkoutPlan(t *testing.T, db *gorm.DB) *models.WorkoutPlan {
	t.Helper()

	plan := models.WorkoutPlan{
		Name:       "Push Pull Legs",
		OwnerID:    1,
		Difficulty: "intermediate",
		IsActive:   true,
		Days: []models.WorkoutDay{
			{
				DayNumber:         1,
				Duration:          60,
				EstimatedCalories: 500,
				Exercises: []models.ExerciseInstance{
					{ExerciseTypeID: 1, Order: 1, TargetSets: 4, TargetReps: 8, EstimatedCalories: 300},
					{ExerciseTypeID: 2, Order: 2, TargetSets: 3, TargetReps: 12, EstimatedCalories: 200},
				},
			},
			{
				DayNumber:         2,
				Duration:          45,
				EstimatedCalories: 350,
				Exercises: []models.ExerciseInstance{
					{ExerciseTypeID: 3, Order: 1, TargetSets: 5, TargetReps: 5, EstimatedCalories: 350},
				},
			},
			{DayNumber: 3, IsRestDay: true},
		},
	}
	require.NoError(t, db.Create(&plan).Error)
	return &plan
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
