package services

import (
	"testing"

	"fitcoach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkUpdateWorkoutPlanNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db, nil, nil)

	_, err := svc.BulkUpdateWorkoutPlan(42, models.WorkoutPlanBulkPayload{
		Name: ptrString("Ghost plan"),
	})

	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestBulkUpdateWorkoutPlanScalarsOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db, nil, nil)
	plan := seedWorkoutPlan(t, db)

	updated, err := svc.BulkUpdateWorkoutPlan(plan.ID, models.WorkoutPlanBulkPayload{
		Name:       ptrString("PPL v2"),
		Difficulty: ptrString("advanced"),
	})
	require.NoError(t, err)

	assert.Equal(t, "PPL v2", updated.Name)
	assert.Equal(t, "advanced", updated.Difficulty)
	assert.Len(t, updated.Days, 3)
	assert.Equal(t, int64(3), countRows(t, db, &models.ExerciseInstance{}))
}

func TestBulkUpdateWorkoutPlanDeletesOmittedDays(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db, nil, nil)
	plan := seedWorkoutPlan(t, db)

	updated, err := svc.BulkUpdateWorkoutPlan(plan.ID, models.WorkoutPlanBulkPayload{
		Days: &[]models.WorkoutDayPayload{
			{ID: plan.Days[0].ID, DayNumber: 1, Duration: 60},
			{ID: plan.Days[2].ID, DayNumber: 3, IsRestDay: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Days, 2)
	assert.Equal(t, 1, updated.Days[0].DayNumber)
	assert.Equal(t, 3, updated.Days[1].DayNumber)

	// Day 2's only exercise went with it.
	assert.Equal(t, int64(2), countRows(t, db, &models.ExerciseInstance{}))
}

func TestBulkUpdateWorkoutPlanEmptyExercisesClearsDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db, nil, nil)
	plan := seedWorkoutPlan(t, db)
	day := plan.Days[0]

	updated, err := svc.BulkUpdateWorkoutPlan(plan.ID, models.WorkoutPlanBulkPayload{
		Days: &[]models.WorkoutDayPayload{
			{ID: day.ID, DayNumber: 1, Duration: 60, Exercises: &[]models.ExerciseInstancePayload{}},
			{ID: plan.Days[1].ID, DayNumber: 2, Duration: 45},
			{ID: plan.Days[2].ID, DayNumber: 3, IsRestDay: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Days, 3)
	assert.Empty(t, updated.Days[0].Exercises)
	// Cleared day recomputes to zero, second day keeps its exercise.
	assert.Equal(t, 0.0, updated.Days[0].EstimatedCalories)
	assert.Len(t, updated.Days[1].Exercises, 1)
}

func TestBulkUpdateWorkoutPlanReconcilesExercises(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db, nil, nil)
	plan := seedWorkoutPlan(t, db)
	day := plan.Days[0]
	require.Len(t, day.Exercises, 2)

	updated, err := svc.BulkUpdateWorkoutPlan(plan.ID, models.WorkoutPlanBulkPayload{
		Days: &[]models.WorkoutDayPayload{
			{
				ID: day.ID, DayNumber: 1, Duration: 75,
				Exercises: &[]models.ExerciseInstancePayload{
					// Update the first, omit the second, add a third.
					{ID: day.Exercises[0].ID, ExerciseTypeID: 1, Order: 1, TargetSets: 5, TargetReps: 5, EstimatedCalories: 350},
					{ExerciseTypeID: 4, Order: 2, TargetSets: 3, TargetReps: 10, EstimatedCalories: 150},
				},
			},
			{ID: plan.Days[1].ID, DayNumber: 2, Duration: 45},
			{ID: plan.Days[2].ID, DayNumber: 3, IsRestDay: true},
		},
	})
	require.NoError(t, err)

	var first models.WorkoutDay
	for _, d := range updated.Days {
		if d.ID == day.ID {
			first = d
		}
	}
	require.Len(t, first.Exercises, 2)
	assert.Equal(t, day.Exercises[0].ID, first.Exercises[0].ID)
	assert.Equal(t, 5, first.Exercises[0].TargetSets)
	assert.Equal(t, uint(4), first.Exercises[1].ExerciseTypeID)
	// Day calories derive from the reconciled instances.
	assert.Equal(t, 500.0, first.EstimatedCalories)
	assert.Equal(t, 75, first.Duration)
}

func TestBulkUpdateWorkoutPlanSkipsUnknownExerciseIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlanService(db, nil, nil)
	plan := seedWorkoutPlan(t, db)
	day := plan.Days[0]

	updated, err := svc.BulkUpdateWorkoutPlan(plan.ID, models.WorkoutPlanBulkPayload{
		Days: &[]models.WorkoutDayPayload{
			{
				ID: day.ID, DayNumber: 1, Duration: 60,
				Exercises: &[]models.ExerciseInstancePayload{
					{ID: day.Exercises[0].ID, ExerciseTypeID: 1, Order: 1, TargetSets: 4, TargetReps: 8, EstimatedCalories: 300},
					{ID: day.Exercises[1].ID, ExerciseTypeID: 2, Order: 2, TargetSets: 3, TargetReps: 12, EstimatedCalories: 200},
					{ID: 77777, ExerciseTypeID: 9, Order: 3, EstimatedCalories: 999},
				},
			},
			{ID: plan.Days[1].ID, DayNumber: 2, Duration: 45},
			{ID: plan.Days[2].ID, DayNumber: 3, IsRestDay: true},
		},
	})
	require.NoError(t, err)

	var first models.WorkoutDay
	for _, d := range updated.Days {
		if d.ID == day.ID {
			first = d
		}
	}
	// The phantom id creates nothing.
	require.Len(t, first.Exercises, 2)
	assert.Equal(t, 500.0, first.EstimatedCalories)
}
