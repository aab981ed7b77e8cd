package services

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

// Workout plans reconcile the same way nutrition plans do, one level shallower
// (plan -> days -> exercise instances). Day-level estimated calories are
// derived from the instances whenever the exercises key is present.

func reconcileWorkoutDays(tx *gorm.DB, planID uint, days []models.WorkoutDayPayload) error {
	var existing []models.WorkoutDay
	if err := tx.Where("workout_plan_id = ?", planID).Find(&existing).Error; err != nil {
		return err
	}

	existingIDs := make(map[uint]bool, len(existing))
	for _, d := range existing {
		existingIDs[d.ID] = true
	}
	keep := make(map[uint]bool, len(days))
	for _, p := range days {
		if p.ID != 0 {
			keep[p.ID] = true
		}
	}

	for _, d := range existing {
		if !keep[d.ID] {
			if err := deleteWorkoutDay(tx, d.ID); err != nil {
				return err
			}
		}
	}

	for _, p := range days {
		if p.ID != 0 {
			if !existingIDs[p.ID] {
				continue
			}
			if err := updateWorkoutDay(tx, p); err != nil {
				return err
			}
		} else {
			if err := createWorkoutDay(tx, planID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func deleteWorkoutDay(tx *gorm.DB, dayID uint) error {
	if err := tx.Unscoped().Where("workout_day_id = ?", dayID).Delete(&models.ExerciseInstance{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&models.WorkoutDay{}, dayID).Error
}

func updateWorkoutDay(tx *gorm.DB, p models.WorkoutDayPayload) error {
	fields := map[string]interface{}{
		"day_number":  p.DayNumber,
		"is_rest_day": p.IsRestDay,
		"duration":    p.Duration,
	}

	if p.Exercises != nil {
		if err := reconcileExercises(tx, p.ID, *p.Exercises); err != nil {
			return err
		}
		var exercises []models.ExerciseInstance
		if err := tx.Where("workout_day_id = ?", p.ID).Find(&exercises).Error; err != nil {
			return err
		}
		fields["estimated_calories"] = SumExerciseCalories(exercises)
	} else if p.EstimatedCalories != nil {
		fields["estimated_calories"] = *p.EstimatedCalories
	}

	return tx.Model(&models.WorkoutDay{}).Where("id = ?", p.ID).Updates(fields).Error
}

func createWorkoutDay(tx *gorm.DB, planID uint, p models.WorkoutDayPayload) error {
	day := models.WorkoutDay{
		WorkoutPlanID:     planID,
		DayNumber:         p.DayNumber,
		IsRestDay:         p.IsRestDay,
		Duration:          p.Duration,
		EstimatedCalories: floatOrZero(p.EstimatedCalories),
	}
	if err := tx.Create(&day).Error; err != nil {
		return err
	}

	if p.Exercises == nil || len(*p.Exercises) == 0 {
		return nil
	}

	for _, ep := range *p.Exercises {
		if err := createExerciseInstance(tx, day.ID, ep); err != nil {
			return err
		}
	}

	var exercises []models.ExerciseInstance
	if err := tx.Where("workout_day_id = ?", day.ID).Find(&exercises).Error; err != nil {
		return err
	}
	return tx.Model(&day).Update("estimated_calories", SumExerciseCalories(exercises)).Error
}

func reconcileExercises(tx *gorm.DB, dayID uint, exercises []models.ExerciseInstancePayload) error {
	var existing []models.ExerciseInstance
	if err := tx.Where("workout_day_id = ?", dayID).Find(&existing).Error; err != nil {
		return err
	}

	existingIDs := make(map[uint]bool, len(existing))
	for _, e := range existing {
		existingIDs[e.ID] = true
	}
	keep := make(map[uint]bool, len(exercises))
	for _, p := range exercises {
		if p.ID != 0 {
			keep[p.ID] = true
		}
	}

	for _, e := range existing {
		if !keep[e.ID] {
			if err := tx.Unscoped().Delete(&models.ExerciseInstance{}, e.ID).Error; err != nil {
				return err
			}
		}
	}

	for _, p := range exercises {
		if p.ID != 0 {
			if !existingIDs[p.ID] {
				continue
			}
			err := tx.Model(&models.ExerciseInstance{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
				"exercise_type_id":   p.ExerciseTypeID,
				"exercise_order":     p.Order,
				"target_sets":        p.TargetSets,
				"target_reps":        p.TargetReps,
				"target_duration":    p.TargetDuration,
				"estimated_calories": p.EstimatedCalories,
				"notes":              p.Notes,
			}).Error
			if err != nil {
				return err
			}
		} else {
			if err := createExerciseInstance(tx, dayID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func createExerciseInstance(tx *gorm.DB, dayID uint, p models.ExerciseInstancePayload) error {
	instance := models.ExerciseInstance{
		WorkoutDayID:      dayID,
		ExerciseTypeID:    p.ExerciseTypeID,
		Order:             p.Order,
		TargetSets:        p.TargetSets,
		TargetReps:        p.TargetReps,
		TargetDuration:    p.TargetDuration,
		EstimatedCalories: p.EstimatedCalories,
		Notes:             p.Notes,
	}
	return tx.Create(&instance).Error
}
