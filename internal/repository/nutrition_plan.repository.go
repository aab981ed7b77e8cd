package repository

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

type NutritionPlanRepository interface {
	FindByID(id uint) (*models.NutritionPlan, error)
	FindByIDWithTree(id uint) (*models.NutritionPlan, error)
	FindByOwner(ownerID uint) ([]models.NutritionPlan, error)
}

type nutritionPlanRepository struct {
	db *gorm.DB
}

func NewNutritionPlanRepository(db *gorm.DB) NutritionPlanRepository {
	return &nutritionPlanRepository{db}
}

func (r *nutritionPlanRepository) FindByID(id uint) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionPlanRepository) FindByIDWithTree(id uint) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := r.db.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("nutrition_days.id") }).
		Preload("Days.Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.time") }).
		Preload("Days.Meals.Foods").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionPlanRepository) FindByOwner(ownerID uint) ([]models.NutritionPlan, error) {
	var plans []models.NutritionPlan
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&plans).Error
	return plans, err
}
