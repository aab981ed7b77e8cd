package services

import (
	"errors"
	"log"
	"time"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrMealNotFound       = errors.New("meal not found")
)

// EventPublisher is the notification fan-out the services emit to. The AMQP
// notifier implements it; a nil publisher is a no-op.
type EventPublisher interface {
	Publish(routingKey string, payload interface{})
}

// PlanService is the single entry point for plan tree mutations. Every bulk
// update runs inside one transaction: the reconciler and (nutrition only) the
// adherence recalculation either all commit or all roll back.
type PlanService struct {
	db     *gorm.DB
	events EventPublisher
	cache  ProgressCache
}

func NewPlanService(db *gorm.DB, events EventPublisher, cache ProgressCache) *PlanService {
	return &PlanService{db: db, events: events, cache: cache}
}

func (s *PlanService) BulkUpdateWorkoutPlan(planID uint, payload models.WorkoutPlanBulkPayload) (*models.WorkoutPlan, error) {
	var updated *models.WorkoutPlan

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.WorkoutPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		fields := map[string]interface{}{}
		if payload.Name != nil {
			fields["name"] = *payload.Name
		}
		if payload.Description != nil {
			fields["description"] = *payload.Description
		}
		if payload.Difficulty != nil {
			fields["difficulty"] = *payload.Difficulty
		}
		if payload.EstimatedCalories != nil {
			fields["estimated_calories"] = *payload.EstimatedCalories
		}
		if payload.IsActive != nil {
			fields["is_active"] = *payload.IsActive
		}
		if len(fields) > 0 {
			if err := tx.Model(&plan).Updates(fields).Error; err != nil {
				return err
			}
		}

		if payload.Days != nil {
			if err := reconcileWorkoutDays(tx, plan.ID, *payload.Days); err != nil {
				return err
			}
		}

		full, err := loadWorkoutPlanTree(tx, plan.ID)
		if err != nil {
			return err
		}
		updated = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("workout_plan.bulk_updated", map[string]interface{}{"plan_id": planID})
	return updated, nil
}

func (s *PlanService) BulkUpdateNutritionPlan(planID uint, payload models.NutritionPlanBulkPayload) (*models.NutritionPlan, error) {
	var updated *models.NutritionPlan
	var recomputed []uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.NutritionPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		fields := map[string]interface{}{}
		if payload.Name != nil {
			fields["name"] = *payload.Name
		}
		if payload.Description != nil {
			fields["description"] = *payload.Description
		}
		if payload.IsActive != nil {
			fields["is_active"] = *payload.IsActive
		}
		if len(fields) > 0 {
			if err := tx.Model(&plan).Updates(fields).Error; err != nil {
				return err
			}
		}

		if payload.Days != nil {
			if err := reconcileNutritionDays(tx, plan.ID, *payload.Days); err != nil {
				return err
			}
			// Structure may have changed: every adherence record of every
			// assignment is recomputed against the new shape.
			touched, err := recalculatePlanAdherence(tx, plan.ID)
			if err != nil {
				return err
			}
			recomputed = touched
		}

		full, err := loadNutritionPlanTree(tx, plan.ID)
		if err != nil {
			return err
		}
		updated = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Recomputed assignments carry new numbers; cached summaries are stale.
	if s.cache != nil {
		for _, id := range recomputed {
			if err := s.cache.InvalidateProgress(id); err != nil {
				log.Printf("Failed to invalidate progress cache for assignment %d: %v", id, err)
			}
		}
	}

	s.publish("nutrition_plan.bulk_updated", map[string]interface{}{"plan_id": planID})
	return updated, nil
}

// CreateWorkoutPlan persists a full tree in one transaction, deriving day
// calorie totals from the exercise instances. With autoAssign the owner gets
// an active assignment to their own plan in the same transaction.
func (s *PlanService) CreateWorkoutPlan(plan *models.WorkoutPlan, autoAssign bool) error {
	for i := range plan.Days {
		if len(plan.Days[i].Exercises) > 0 {
			plan.Days[i].EstimatedCalories = SumExerciseCalories(plan.Days[i].Exercises)
		}
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if !autoAssign {
			return nil
		}
		assignment := models.WorkoutPlanAssignment{
			WorkoutPlanID: plan.ID,
			UserID:        plan.OwnerID,
			AssignedBy:    plan.OwnerID,
			Status:        models.AssignmentActive,
			StartDate:     time.Now(),
		}
		return tx.Create(&assignment).Error
	})
}

// CreateNutritionPlan persists a full tree in one transaction, deriving meal
// totals from foods and day totals from meals. With autoAssign the owner gets
// an active assignment to their own plan in the same transaction.
func (s *PlanService) CreateNutritionPlan(plan *models.NutritionPlan, autoAssign bool) error {
	for i := range plan.Days {
		day := &plan.Days[i]
		for j := range day.Meals {
			meal := &day.Meals[j]
			if len(meal.Foods) > 0 {
				t := SumFoodTotals(meal.Foods)
				meal.Calories = t.Calories
				meal.Protein = t.Protein
				meal.Carbs = t.Carbs
				meal.Fat = t.Fat
				meal.Fiber = t.Fiber
			}
		}
		t := SumMealTotals(day.Meals)
		day.TotalCalories = t.Calories
		day.TotalProtein = t.Protein
		day.TotalCarbs = t.Carbs
		day.TotalFat = t.Fat
		day.TotalFiber = t.Fiber
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		if !autoAssign {
			return nil
		}
		assignment := models.NutritionPlanAssignment{
			NutritionPlanID: plan.ID,
			UserID:          plan.OwnerID,
			AssignedBy:      plan.OwnerID,
			Status:          models.AssignmentActive,
			StartDate:       time.Now(),
		}
		return tx.Create(&assignment).Error
	})
}

// DeleteWorkoutPlan removes the plan and its whole subtree, children first,
// along with any assignments pointing at it.
func (s *PlanService) DeleteWorkoutPlan(planID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.WorkoutPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		var days []models.WorkoutDay
		if err := tx.Where("workout_plan_id = ?", planID).Find(&days).Error; err != nil {
			return err
		}
		for _, d := range days {
			if err := deleteWorkoutDay(tx, d.ID); err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("workout_plan_id = ?", planID).Delete(&models.WorkoutPlanAssignment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.WorkoutPlan{}, planID).Error
	})
}

// DeleteNutritionPlan cascades through days, meals, foods, assignments,
// adherence records and completions.
func (s *PlanService) DeleteNutritionPlan(planID uint) error {
	var removed []uint

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var plan models.NutritionPlan
		if err := tx.First(&plan, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlanNotFound
			}
			return err
		}

		var days []models.NutritionDay
		if err := tx.Where("nutrition_plan_id = ?", planID).Find(&days).Error; err != nil {
			return err
		}
		for _, d := range days {
			if err := deleteNutritionDay(tx, d.ID); err != nil {
				return err
			}
		}

		var assignments []models.NutritionPlanAssignment
		if err := tx.Where("nutrition_plan_id = ?", planID).Find(&assignments).Error; err != nil {
			return err
		}
		for _, a := range assignments {
			var records []models.AdherenceRecord
			if err := tx.Where("nutrition_plan_assignment_id = ?", a.ID).Find(&records).Error; err != nil {
				return err
			}
			for _, r := range records {
				if err := tx.Unscoped().Where("adherence_record_id = ?", r.ID).Delete(&models.MealCompletion{}).Error; err != nil {
					return err
				}
				if err := tx.Unscoped().Delete(&models.AdherenceRecord{}, r.ID).Error; err != nil {
					return err
				}
			}
			if err := tx.Unscoped().Delete(&models.NutritionPlanAssignment{}, a.ID).Error; err != nil {
				return err
			}
			removed = append(removed, a.ID)
		}
		return tx.Unscoped().Delete(&models.NutritionPlan{}, planID).Error
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		for _, id := range removed {
			if err := s.cache.InvalidateProgress(id); err != nil {
				log.Printf("Failed to invalidate progress cache for assignment %d: %v", id, err)
			}
		}
	}
	return nil
}

func loadWorkoutPlanTree(tx *gorm.DB, planID uint) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := tx.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("workout_days.day_number") }).
		Preload("Days.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_instances.exercise_order") }).
		Preload("Days.Exercises.ExerciseType").
		First(&plan, planID).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func loadNutritionPlanTree(tx *gorm.DB, planID uint) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := tx.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("nutrition_days.id") }).
		Preload("Days.Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.time") }).
		Preload("Days.Meals.Foods").
		First(&plan, planID).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) publish(key string, payload interface{}) {
	if s.events != nil {
		s.events.Publish(key, payload)
	}
}
