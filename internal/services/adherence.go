package services

import (
	"errors"
	"strings"
	"time"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

// recalculateAdherenceRecord rebuilds every derived field of one record from
// its MealCompletion rows and the plan's current day for the record's weekday.
// total_meals is always recomputed from the nominal plan, never trusted from
// prior storage, so a bulk plan update changes historical percentages too.
func recalculateAdherenceRecord(tx *gorm.DB, recordID uint) error {
	var record models.AdherenceRecord
	if err := tx.First(&record, recordID).Error; err != nil {
		return err
	}

	var assignment models.NutritionPlanAssignment
	if err := tx.First(&assignment, record.NutritionPlanAssignmentID).Error; err != nil {
		return err
	}

	var completions []models.MealCompletion
	if err := tx.Where("adherence_record_id = ?", record.ID).Find(&completions).Error; err != nil {
		return err
	}

	nominal, err := nominalMealsForWeekday(tx, assignment.NutritionPlanID, weekdayOf(record.Date))
	if err != nil {
		return err
	}

	totalMeals := len(nominal)
	mealsCompleted := 0
	var consumed float64
	for _, c := range completions {
		if c.Completed {
			mealsCompleted++
			consumed += c.CaloriesConsumed
		}
	}

	var percentage float64
	if totalMeals > 0 {
		percentage = round2(float64(mealsCompleted) / float64(totalMeals) * 100)
	}

	var planned float64
	for _, m := range nominal {
		planned += m.Calories
	}

	return tx.Model(&record).Updates(map[string]interface{}{
		"total_meals":             totalMeals,
		"meals_completed":         mealsCompleted,
		"adherence_percentage":    percentage,
		"total_calories_consumed": consumed,
		"total_calories_planned":  planned,
		"updated_at":              time.Now(),
	}).Error
}

// nominalMealsForWeekday loads the plan's meals for one weekday, the nominal
// structure adherence is measured against.
func nominalMealsForWeekday(tx *gorm.DB, planID uint, weekday string) ([]models.Meal, error) {
	var day models.NutritionDay
	err := tx.Where("nutrition_plan_id = ? AND weekday = ?", planID, weekday).First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var meals []models.Meal
	if err := tx.Where("nutrition_day_id = ?", day.ID).Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// recalculatePlanAdherence re-runs the recalculation for every record of every
// assignment of the plan. Invoked after a bulk update mutates plan structure.
// It returns the touched assignment ids so the caller can drop their cached
// progress summaries once the transaction commits.
func recalculatePlanAdherence(tx *gorm.DB, planID uint) ([]uint, error) {
	var assignments []models.NutritionPlanAssignment
	if err := tx.Where("nutrition_plan_id = ?", planID).Find(&assignments).Error; err != nil {
		return nil, err
	}

	touched := make([]uint, 0, len(assignments))
	for _, assignment := range assignments {
		var records []models.AdherenceRecord
		if err := tx.Where("nutrition_plan_assignment_id = ?", assignment.ID).Find(&records).Error; err != nil {
			return nil, err
		}
		for _, record := range records {
			if err := recalculateAdherenceRecord(tx, record.ID); err != nil {
				return nil, err
			}
		}
		if err := rollupAssignmentProgress(tx, assignment.ID); err != nil {
			return nil, err
		}
		touched = append(touched, assignment.ID)
	}
	return touched, nil
}

// rollupAssignmentProgress sets the assignment's progress percentage to the
// mean adherence across its records.
func rollupAssignmentProgress(tx *gorm.DB, assignmentID uint) error {
	var records []models.AdherenceRecord
	if err := tx.Where("nutrition_plan_assignment_id = ?", assignmentID).Find(&records).Error; err != nil {
		return err
	}

	var progress float64
	if len(records) > 0 {
		var sum float64
		for _, r := range records {
			sum += r.AdherencePercentage
		}
		progress = round2(sum / float64(len(records)))
	}

	return tx.Model(&models.NutritionPlanAssignment{}).Where("id = ?", assignmentID).
		Update("progress_percentage", progress).Error
}

// findOrCreateAdherenceRecord returns the record for (assignment, date),
// creating one against the nominal weekday structure when absent.
func findOrCreateAdherenceRecord(tx *gorm.DB, assignment *models.NutritionPlanAssignment, date time.Time) (*models.AdherenceRecord, error) {
	var record models.AdherenceRecord
	err := tx.Where("nutrition_plan_assignment_id = ? AND date = ?", assignment.ID, date).First(&record).Error
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	nominal, err := nominalMealsForWeekday(tx, assignment.NutritionPlanID, weekdayOf(date))
	if err != nil {
		return nil, err
	}
	var planned float64
	for _, m := range nominal {
		planned += m.Calories
	}

	record = models.AdherenceRecord{
		NutritionPlanAssignmentID: assignment.ID,
		Date:                      date,
		TotalMeals:                len(nominal),
		TotalCaloriesPlanned:      planned,
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// weekdayOf resolves the calendar weekday in UTC. Records store UTC midnight,
// and a timestamptz scanned back in a non-UTC server zone would otherwise
// resolve to the previous day.
func weekdayOf(date time.Time) string {
	return strings.ToLower(date.UTC().Weekday().String())
}

// completionDate parses the optional YYYY-MM-DD request date, defaulting to
// today truncated to a UTC calendar date.
func completionDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}
