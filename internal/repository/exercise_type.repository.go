package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type ExerciseTypeRepository interface {
	Create(exerciseType *models.ExerciseType) error
	FindByID(id uint) (*models.ExerciseType, error)
	FindAll() ([]models.ExerciseType, error)
	FindByMuscleGroup(muscleGroup string) ([]models.ExerciseType, error)
	Update(exerciseType *models.ExerciseType) error
	Delete(id uint) error
}

type exerciseTypeRepository struct {
	db *gorm.DB
}

func NewExerciseTypeRepository(db *gorm.DB) ExerciseTypeRepository {
	return &exerciseTypeRepository{db}
}

func (r *exerciseTypeRepository) Create(exerciseType *models.ExerciseType) error {
	return r.db.Create(exerciseType).Error
}

func (r *exerciseTypeRepository) FindByID(id uint) (*models.ExerciseType, error) {
	var exerciseType models.ExerciseType
	err := r.db.First(&exerciseType, id).Error
	if err != nil {
		return nil, err
	}
	return &exerciseType, nil
}

func (r *exerciseTypeRepository) FindAll() ([]models.ExerciseType, error) {
	var exerciseTypes []models.ExerciseType
	err := r.db.Order("name").Find(&exerciseTypes).Error
	return exerciseTypes, err
}

func (r *exerciseTypeRepository) FindByMuscleGroup(muscleGroup string) ([]models.ExerciseType, error) {
	var exerciseTypes []models.ExerciseType
	err := r.db.Where("muscle_group = ?", muscleGroup).Order("name").Find(&exerciseTypes).Error
	return exerciseTypes, err
}

func (r *exerciseTypeRepository) Update(exerciseType *models.ExerciseType) error {
	return r.db.Save(exerciseType).Error
}

func (r *exerciseTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.ExerciseType{}, id).Error
}
