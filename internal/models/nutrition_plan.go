package models

import "gorm.io/gorm"

// Weekday values accepted for nutrition days.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type NutritionPlan struct {
	gorm.Model
	Name        string         `json:"name" example:"Cutting 2200 kcal"`
	Description string         `json:"description"`
	OwnerID     uint           `json:"owner_id"`
	Owner       User           `gorm:"foreignKey:OwnerID" json:"-"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	Days        []NutritionDay `gorm:"constraint:OnDelete:CASCADE" json:"days,omitempty"`
}

// NutritionDay totals are derived from meals; meals are derived from foods.
// Only Food rows are authoritative.
type NutritionDay struct {
	gorm.Model
	NutritionPlanID uint    `json:"nutrition_plan_id"`
	Weekday         string  `json:"weekday" example:"monday"`
	TotalCalories   float64 `json:"total_calories"`
	TotalProtein    float64 `json:"total_protein"`
	TotalCarbs      float64 `json:"total_carbs"`
	TotalFat        float64 `json:"total_fat"`
	TotalFiber      float64 `json:"total_fiber"`
	Meals           []Meal  `gorm:"constraint:OnDelete:CASCADE" json:"meals,omitempty"`
}

type Meal struct {
	gorm.Model
	NutritionDayID uint    `json:"nutrition_day_id"`
	Name           string  `json:"name" example:"Breakfast"`
	Time           string  `gorm:"type:varchar(8)" json:"time" example:"08:00:00"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	Fiber          float64 `json:"fiber"`
	Foods          []Food  `gorm:"constraint:OnDelete:CASCADE" json:"foods,omitempty"`
}

type Food struct {
	gorm.Model
	MealID   uint    `json:"meal_id"`
	Name     string  `json:"name" example:"Oats"`
	Quantity float64 `json:"quantity" example:"80"`
	Unit     string  `json:"unit" example:"g"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}
