package services

import (
	"fitcoach/internal/models"

	"gorm.io/gorm"
)

// The nutrition reconciler makes the stored plan tree match a desired tree,
// level by level (plan -> days -> meals -> foods). At every level:
//
//   - stored children whose id is absent from the payload are deleted, with
//     their descendants removed first;
//   - payload entries carrying an id that exists under the parent are updated
//     in place, children reconciled before the parent row is written;
//   - payload entries carrying an id that does NOT exist under the parent are
//     skipped silently (a deliberate no-op, not an error);
//   - payload entries without an id are inserted, their children created
//     fresh.
//
// Parent aggregates are recomputed from the reconciled children before
// control returns to the level above. The transaction handle is threaded
// explicitly through every call; commit and rollback happen only at the
// orchestrator boundary.

func reconcileNutritionDays(tx *gorm.DB, planID uint, days []models.NutritionDayPayload) error {
	var existing []models.NutritionDay
	if err := tx.Where("nutrition_plan_id = ?", planID).Find(&existing).Error; err != nil {
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
			if err := deleteNutritionDay(tx, d.ID); err != nil {
				return err
			}
		}
	}

	for _, p := range days {
		if p.ID != 0 {
			if !existingIDs[p.ID] {
				continue
			}
			if err := updateNutritionDay(tx, p); err != nil {
				return err
			}
		} else {
			if err := createNutritionDay(tx, planID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func deleteNutritionDay(tx *gorm.DB, dayID uint) error {
	var meals []models.Meal
	if err := tx.Where("nutrition_day_id = ?", dayID).Find(&meals).Error; err != nil {
		return err
	}
	for _, m := range meals {
		if err := deleteMeal(tx, m.ID); err != nil {
			return err
		}
	}
	return tx.Unscoped().Delete(&models.NutritionDay{}, dayID).Error
}

func deleteMeal(tx *gorm.DB, mealID uint) error {
	if err := tx.Unscoped().Where("meal_id = ?", mealID).Delete(&models.Food{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&models.Meal{}, mealID).Error
}

func updateNutritionDay(tx *gorm.DB, p models.NutritionDayPayload) error {
	if p.Meals != nil {
		if err := reconcileMeals(tx, p.ID, *p.Meals); err != nil {
			return err
		}
	}

	var meals []models.Meal
	if err := tx.Where("nutrition_day_id = ?", p.ID).Find(&meals).Error; err != nil {
		return err
	}
	t := SumMealTotals(meals)

	return tx.Model(&models.NutritionDay{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"weekday":        p.Weekday,
		"total_calories": t.Calories,
		"total_protein":  t.Protein,
		"total_carbs":    t.Carbs,
		"total_fat":      t.Fat,
		"total_fiber":    t.Fiber,
	}).Error
}

func createNutritionDay(tx *gorm.DB, planID uint, p models.NutritionDayPayload) error {
	day := models.NutritionDay{
		NutritionPlanID: planID,
		Weekday:         p.Weekday,
	}
	if err := tx.Create(&day).Error; err != nil {
		return err
	}

	if p.Meals != nil {
		for _, mp := range *p.Meals {
			if err := createMeal(tx, day.ID, mp); err != nil {
				return err
			}
		}
	}

	var meals []models.Meal
	if err := tx.Where("nutrition_day_id = ?", day.ID).Find(&meals).Error; err != nil {
		return err
	}
	t := SumMealTotals(meals)

	return tx.Model(&day).Updates(map[string]interface{}{
		"total_calories": t.Calories,
		"total_protein":  t.Protein,
		"total_carbs":    t.Carbs,
		"total_fat":      t.Fat,
		"total_fiber":    t.Fiber,
	}).Error
}

func reconcileMeals(tx *gorm.DB, dayID uint, meals []models.MealPayload) error {
	var existing []models.Meal
	if err := tx.Where("nutrition_day_id = ?", dayID).Find(&existing).Error; err != nil {
		return err
	}

	existingIDs := make(map[uint]bool, len(existing))
	for _, m := range existing {
		existingIDs[m.ID] = true
	}
	keep := make(map[uint]bool, len(meals))
	for _, p := range meals {
		if p.ID != 0 {
			keep[p.ID] = true
		}
	}

	for _, m := range existing {
		if !keep[m.ID] {
			if err := deleteMeal(tx, m.ID); err != nil {
				return err
			}
		}
	}

	for _, p := range meals {
		if p.ID != 0 {
			if !existingIDs[p.ID] {
				continue
			}
			if err := updateMeal(tx, p); err != nil {
				return err
			}
		} else {
			if err := createMeal(tx, dayID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func updateMeal(tx *gorm.DB, p models.MealPayload) error {
	fields := map[string]interface{}{
		"name": p.Name,
		"time": p.Time,
	}

	if p.Foods != nil {
		if err := reconcileFoods(tx, p.ID, *p.Foods); err != nil {
			return err
		}
		var foods []models.Food
		if err := tx.Where("meal_id = ?", p.ID).Find(&foods).Error; err != nil {
			return err
		}
		t := SumFoodTotals(foods)
		fields["calories"] = t.Calories
		fields["protein"] = t.Protein
		fields["carbs"] = t.Carbs
		fields["fat"] = t.Fat
		fields["fiber"] = t.Fiber
	} else {
		// No foods key: meal-level macros are taken from the payload when
		// provided, otherwise left as stored.
		if p.Calories != nil {
			fields["calories"] = *p.Calories
		}
		if p.Protein != nil {
			fields["protein"] = *p.Protein
		}
		if p.Carbs != nil {
			fields["carbs"] = *p.Carbs
		}
		if p.Fat != nil {
			fields["fat"] = *p.Fat
		}
		if p.Fiber != nil {
			fields["fiber"] = *p.Fiber
		}
	}

	return tx.Model(&models.Meal{}).Where("id = ?", p.ID).Updates(fields).Error
}

func createMeal(tx *gorm.DB, dayID uint, p models.MealPayload) error {
	meal := models.Meal{
		NutritionDayID: dayID,
		Name:           p.Name,
		Time:           p.Time,
		Calories:       floatOrZero(p.Calories),
		Protein:        floatOrZero(p.Protein),
		Carbs:          floatOrZero(p.Carbs),
		Fat:            floatOrZero(p.Fat),
		Fiber:          floatOrZero(p.Fiber),
	}
	if err := tx.Create(&meal).Error; err != nil {
		return err
	}

	if p.Foods == nil || len(*p.Foods) == 0 {
		return nil
	}

	for _, fp := range *p.Foods {
		if err := createFood(tx, meal.ID, fp); err != nil {
			return err
		}
	}

	var foods []models.Food
	if err := tx.Where("meal_id = ?", meal.ID).Find(&foods).Error; err != nil {
		return err
	}
	t := SumFoodTotals(foods)

	return tx.Model(&meal).Updates(map[string]interface{}{
		"calories": t.Calories,
		"protein":  t.Protein,
		"carbs":    t.Carbs,
		"fat":      t.Fat,
		"fiber":    t.Fiber,
	}).Error
}

func reconcileFoods(tx *gorm.DB, mealID uint, foods []models.FoodPayload) error {
	var existing []models.Food
	if err := tx.Where("meal_id = ?", mealID).Find(&existing).Error; err != nil {
		return err
	}

	existingIDs := make(map[uint]bool, len(existing))
	for _, f := range existing {
		existingIDs[f.ID] = true
	}
	keep := make(map[uint]bool, len(foods))
	for _, p := range foods {
		if p.ID != 0 {
			keep[p.ID] = true
		}
	}

	for _, f := range existing {
		if !keep[f.ID] {
			if err := tx.Unscoped().Delete(&models.Food{}, f.ID).Error; err != nil {
				return err
			}
		}
	}

	for _, p := range foods {
		if p.ID != 0 {
			if !existingIDs[p.ID] {
				continue
			}
			err := tx.Model(&models.Food{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
				"name":     p.Name,
				"quantity": p.Quantity,
				"unit":     p.Unit,
				"calories": p.Calories,
				"protein":  floatOrZero(p.Protein),
				"carbs":    floatOrZero(p.Carbs),
				"fat":      floatOrZero(p.Fat),
				"fiber":    floatOrZero(p.Fiber),
			}).Error
			if err != nil {
				return err
			}
		} else {
			if err := createFood(tx, mealID, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func createFood(tx *gorm.DB, mealID uint, p models.FoodPayload) error {
	food := models.Food{
		MealID:   mealID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Unit:     p.Unit,
		Calories: p.Calories,
		Protein:  floatOrZero(p.Protein),
		Carbs:    floatOrZero(p.Carbs),
		Fat:      floatOrZero(p.Fat),
		Fiber:    floatOrZero(p.Fiber),
	}
	return tx.Create(&food).Error
}
