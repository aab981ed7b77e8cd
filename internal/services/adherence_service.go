package services

import (
	"errors"
	"log"
	"time"

	"fitcoach/internal/models"

	"gorm.io/gorm"
)

// ProgressCache stores derived progress summaries keyed by assignment id.
// The redis client implements it; a nil cache disables caching.
type ProgressCache interface {
	StoreProgressSummary(assignmentID uint, summary interface{}, ttl time.Duration) error
	GetProgressSummary(assignmentID uint, dest interface{}) (bool, error)
	InvalidateProgress(assignmentID uint) error
}

type ProgressSummary struct {
	AssignmentID          uint    `json:"assignment_id"`
	Status                string  `json:"status"`
	ProgressPercentage    float64 `json:"progress_percentage"`
	DaysTracked           int     `json:"days_tracked"`
	TotalCaloriesConsumed float64 `json:"total_calories_consumed"`
	TotalCaloriesPlanned  float64 `json:"total_calories_planned"`
}

type AdherenceService struct {
	db    *gorm.DB
	cache ProgressCache
}

func NewAdherenceService(db *gorm.DB, cache ProgressCache) *AdherenceService {
	return &AdherenceService{db: db, cache: cache}
}

// CompleteMeal records one meal occurrence for an assignment: the adherence
// record for the date is created if absent, the completion is upserted, and
// the record's derived fields plus the assignment progress are recomputed, all
// inside one transaction.
func (s *AdherenceService) CompleteMeal(assignmentID, mealID uint, req models.MealCompletionRequest) (*models.MealCompletion, error) {
	date, err := completionDate(req.Date)
	if err != nil {
		return nil, err
	}

	var completion models.MealCompletion

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.NutritionPlanAssignment
		if err := tx.First(&assignment, assignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		// The meal must belong to the assignment's plan.
		var meal models.Meal
		err := tx.Joins("JOIN nutrition_days ON nutrition_days.id = meals.nutrition_day_id").
			Where("meals.id = ? AND nutrition_days.nutrition_plan_id = ?", mealID, assignment.NutritionPlanID).
			First(&meal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealNotFound
			}
			return err
		}

		record, err := findOrCreateAdherenceRecord(tx, &assignment, date)
		if err != nil {
			return err
		}

		completed := true
		if req.Completed != nil {
			completed = *req.Completed
		}
		calories := meal.Calories
		if req.CaloriesConsumed != nil {
			calories = *req.CaloriesConsumed
		}

		err = tx.Where("adherence_record_id = ? AND meal_id = ?", record.ID, mealID).First(&completion).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"completed":         completed,
				"calories_consumed": calories,
				"protein_consumed":  floatOrZero(req.ProteinConsumed),
				"carbs_consumed":    floatOrZero(req.CarbsConsumed),
				"fat_consumed":      floatOrZero(req.FatConsumed),
				"notes":             req.Notes,
			}
			if err := tx.Model(&completion).Updates(updates).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			completion = models.MealCompletion{
				AdherenceRecordID: record.ID,
				MealID:            mealID,
				Completed:         completed,
				CaloriesConsumed:  calories,
				ProteinConsumed:   floatOrZero(req.ProteinConsumed),
				CarbsConsumed:     floatOrZero(req.CarbsConsumed),
				FatConsumed:       floatOrZero(req.FatConsumed),
				Notes:             req.Notes,
			}
			if err := tx.Create(&completion).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := recalculateAdherenceRecord(tx, record.ID); err != nil {
			return err
		}
		return rollupAssignmentProgress(tx, assignment.ID)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(assignmentID)
	return &completion, nil
}

// GetAdherence returns the assignment's records, newest first.
func (s *AdherenceService) GetAdherence(assignmentID uint) ([]models.AdherenceRecord, error) {
	var assignment models.NutritionPlanAssignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	var records []models.AdherenceRecord
	err := s.db.Where("nutrition_plan_assignment_id = ?", assignmentID).
		Preload("MealCompletions").
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// GetProgress computes the assignment's progress summary, served from the
// cache when warm.
func (s *AdherenceService) GetProgress(assignmentID uint) (*ProgressSummary, error) {
	if s.cache != nil {
		var cached ProgressSummary
		if hit, err := s.cache.GetProgressSummary(assignmentID, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	var assignment models.NutritionPlanAssignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	var records []models.AdherenceRecord
	if err := s.db.Where("nutrition_plan_assignment_id = ?", assignmentID).Find(&records).Error; err != nil {
		return nil, err
	}

	summary := ProgressSummary{
		AssignmentID:       assignment.ID,
		Status:             assignment.Status,
		ProgressPercentage: assignment.ProgressPercentage,
		DaysTracked:        len(records),
	}
	for _, r := range records {
		summary.TotalCaloriesConsumed += r.TotalCaloriesConsumed
		summary.TotalCaloriesPlanned += r.TotalCaloriesPlanned
	}

	if s.cache != nil {
		if err := s.cache.StoreProgressSummary(assignmentID, summary, 5*time.Minute); err != nil {
			log.Printf("Failed to cache progress summary for assignment %d: %v", assignmentID, err)
		}
	}
	return &summary, nil
}

func (s *AdherenceService) invalidate(assignmentID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProgress(assignmentID); err != nil {
		log.Printf("Failed to invalidate progress cache for assignment %d: %v", assignmentID, err)
	}
}
