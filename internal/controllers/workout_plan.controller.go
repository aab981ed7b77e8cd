package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
	"fitcoach/internal/services"

	"github.com/gin-gonic/gin"
)

type WorkoutPlanController struct {
	repo    repository.WorkoutPlanRepository
	planSvc *services.PlanService
}

func NewWorkoutPlanController(repo repository.WorkoutPlanRepository, planSvc *services.PlanService) *WorkoutPlanController {
	return &WorkoutPlanController{repo: repo, planSvc: planSvc}
}

// CreateWorkoutPlan godoc
// @Summary Create a workout plan
// @Description Create a workout plan with an optional full tree of days and exercises
// @Tags workout-plan
// @Accept json
// @Produce json
// @Param plan body models.WorkoutPlan true "Workout plan data"
// @Success 201 {object} map[string]interface{} "Workout plan created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /plans/workout [post]
func (wc *WorkoutPlanController) CreateWorkoutPlan(c *gin.Context) {
	var plan models.WorkoutPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	plan.OwnerID = c.GetUint("user_id")

	// Trainees building their own plan start following it immediately.
	autoAssign := c.GetString("role") == models.RoleTrainee
	if err := wc.planSvc.CreateWorkoutPlan(&plan, autoAssign); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Workout plan created successfully",
		"data":    plan,
	})
}

// GetWorkoutPlan godoc
// @Summary Get a workout plan with its full tree
// @Tags workout-plan
// @Produce json
// @Param id path int true "Workout plan ID"
// @Success 200 {object} map[string]interface{} "Workout plan retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Router /plans/workout/{id} [get]
func (wc *WorkoutPlanController) GetWorkoutPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plan, err := wc.repo.FindByIDWithTree(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout plan not found",
			"error":   "No workout plan exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plan retrieved successfully",
		"data":    plan,
	})
}

// ListWorkoutPlans godoc
// @Summary List the authenticated user's workout plans
// @Tags workout-plan
// @Produce json
// @Success 200 {object} map[string]interface{} "Workout plans retrieved successfully"
// @Router /plans/workout [get]
func (wc *WorkoutPlanController) ListWorkoutPlans(c *gin.Context) {
	plans, err := wc.repo.FindByOwner(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve workout plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plans retrieved successfully",
		"data":    plans,
	})
}

// BulkUpdateWorkoutPlan godoc
// @Summary Replace a workout plan's tree in one transaction
// @Description Reconciles the submitted tree against storage: entries with an id update the stored node, entries without an id create new nodes, stored nodes missing from the payload are deleted. Omitting the days key leaves the tree untouched; an empty days array deletes every day.
// @Tags workout-plan
// @Accept json
// @Produce json
// @Param id path int true "Workout plan ID"
// @Param plan body models.WorkoutPlanBulkPayload true "Desired plan tree"
// @Success 200 {object} map[string]interface{} "Workout plan updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Failure 500 {object} map[string]interface{} "Transaction failure"
// @Router /plans/workout/{id}/bulk [put]
func (wc *WorkoutPlanController) BulkUpdateWorkoutPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var payload models.WorkoutPlanBulkPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	plan, err := wc.planSvc.BulkUpdateWorkoutPlan(uint(id), payload)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Workout plan not found",
				"error":   "No workout plan exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plan updated successfully",
		"data":    plan,
	})
}

// DeleteWorkoutPlan godoc
// @Summary Delete a workout plan and its whole tree
// @Tags workout-plan
// @Produce json
// @Param id path int true "Workout plan ID"
// @Success 200 {object} map[string]interface{} "Workout plan deleted successfully"
// @Failure 404 {object} map[string]interface{} "Workout plan not found"
// @Router /plans/workout/{id} [delete]
func (wc *WorkoutPlanController) DeleteWorkoutPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := wc.planSvc.DeleteWorkoutPlan(uint(id)); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Workout plan not found",
				"error":   "No workout plan exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete workout plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Workout plan deleted successfully",
		"data":    nil,
	})
}
