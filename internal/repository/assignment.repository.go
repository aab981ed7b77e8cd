package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type AssignmentRepository interface {
	CreateWorkout(assignment *models.WorkoutPlanAssignment) error
	CreateNutrition(assignment *models.NutritionPlanAssignment) error
	FindWorkoutByID(id uint) (*models.WorkoutPlanAssignment, error)
	FindNutritionByID(id uint) (*models.NutritionPlanAssignment, error)
	FindWorkoutForUser(userID uint) ([]models.WorkoutPlanAssignment, error)
	FindNutritionForUser(userID uint) ([]models.NutritionPlanAssignment, error)
	UpdateWorkoutStatus(id uint, status string) error
	UpdateNutritionStatus(id uint, status string) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db}
}

func (r *assignmentRepository) CreateWorkout(assignment *models.WorkoutPlanAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) CreateNutrition(assignment *models.NutritionPlanAssignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) FindWorkoutByID(id uint) (*models.WorkoutPlanAssignment, error) {
	var assignment models.WorkoutPlanAssignment
	err := r.db.First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindNutritionByID(id uint) (*models.NutritionPlanAssignment, error) {
	var assignment models.NutritionPlanAssignment
	err := r.db.First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindWorkoutForUser(userID uint) ([]models.WorkoutPlanAssignment, error) {
	var assignments []models.WorkoutPlanAssignment
	err := r.db.Where("user_id = ?", userID).
		Preload("WorkoutPlan").
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) FindNutritionForUser(userID uint) ([]models.NutritionPlanAssignment, error) {
	var assignments []models.NutritionPlanAssignment
	err := r.db.Where("user_id = ?", userID).
		Preload("NutritionPlan").
		Order("created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) UpdateWorkoutStatus(id uint, status string) error {
	return r.db.Model(&models.WorkoutPlanAssignment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *assignmentRepository) UpdateNutritionStatus(id uint, status string) error {
	return r.db.Model(&models.NutritionPlanAssignment{}).Where("id = ?", id).Update("status", status).Error
}
