package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type WorkoutPlanRepository interface {
	FindByID(id uint) (*models.WorkoutPlan, error)
	FindByIDWithTree(id uint) (*models.WorkoutPlan, error)
	FindByOwner(ownerID uint) ([]models.WorkoutPlan, error)
}

type workoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) WorkoutPlanRepository {
	return &workoutPlanRepository{db}
}

func (r *workoutPlanRepository) FindByID(id uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *workoutPlanRepository) FindByIDWithTree(id uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := r.db.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("workout_days.day_number") }).
		Preload("Days.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_instances.exercise_order") }).
		Preload("Days.Exercises.ExerciseType").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *workoutPlanRepository) FindByOwner(ownerID uint) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}
