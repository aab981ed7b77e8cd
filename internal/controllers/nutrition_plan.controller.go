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

type NutritionPlanController struct {
	repo    repository.NutritionPlanRepository
	planSvc *services.PlanService
}

func NewNutritionPlanController(repo repository.NutritionPlanRepository, planSvc *services.PlanService) *NutritionPlanController {
	return &NutritionPlanController{repo: repo, planSvc: planSvc}
}

// CreateNutritionPlan godoc
// @Summary Create a nutrition plan
// @Description Create a nutrition plan with an optional full tree of days, meals and foods. Meal and day totals are derived from the foods.
// @Tags nutrition-plan
// @Accept json
// @Produce json
// @Param plan body models.NutritionPlan true "Nutrition plan data"
// @Success 201 {object} map[string]interface{} "Nutrition plan created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /plans/nutrition [post]
func (nc *NutritionPlanController) CreateNutritionPlan(c *gin.Context) {
	var plan models.NutritionPlan
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
	if err := nc.planSvc.CreateNutritionPlan(&plan, autoAssign); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create nutrition plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Nutrition plan created successfully",
		"data":    plan,
	})
}

// GetNutritionPlan godoc
// @Summary Get a nutrition plan with its full tree
// @Tags nutrition-plan
// @Produce json
// @Param id path int true "Nutrition plan ID"
// @Success 200 {object} map[string]interface{} "Nutrition plan retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Nutrition plan not found"
// @Router /plans/nutrition/{id} [get]
func (nc *NutritionPlanController) GetNutritionPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	plan, err := nc.repo.FindByIDWithTree(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Nutrition plan not found",
			"error":   "No nutrition plan exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition plan retrieved successfully",
		"data":    plan,
	})
}

// ListNutritionPlans godoc
// @Summary List the authenticated user's nutrition plans
// @Tags nutrition-plan
// @Produce json
// @Success 200 {object} map[string]interface{} "Nutrition plans retrieved successfully"
// @Router /plans/nutrition [get]
func (nc *NutritionPlanController) ListNutritionPlans(c *gin.Context) {
	plans, err := nc.repo.FindByOwner(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve nutrition plans",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition plans retrieved successfully",
		"data":    plans,
	})
}

// BulkUpdateNutritionPlan godoc
// @Summary Replace a nutrition plan's tree in one transaction
// @Description Reconciles the submitted tree against storage and recomputes every adherence record of every assignment of the plan. Omitting days/meals/foods keys leaves that level untouched; an empty array deletes every child at that level. Nested ids that do not resolve under their parent are skipped silently.
// @Tags nutrition-plan
// @Accept json
// @Produce json
// @Param id path int true "Nutrition plan ID"
// @Param plan body models.NutritionPlanBulkPayload true "Desired plan tree"
// @Success 200 {object} map[string]interface{} "Nutrition plan updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Nutrition plan not found"
// @Failure 500 {object} map[string]interface{} "Transaction failure"
// @Router /plans/nutrition/{id}/bulk [put]
func (nc *NutritionPlanController) BulkUpdateNutritionPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var payload models.NutritionPlanBulkPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	plan, err := nc.planSvc.BulkUpdateNutritionPlan(uint(id), payload)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Nutrition plan not found",
				"error":   "No nutrition plan exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update nutrition plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition plan updated successfully",
		"data":    plan,
	})
}

// DeleteNutritionPlan godoc
// @Summary Delete a nutrition plan and everything derived from it
// @Tags nutrition-plan
// @Produce json
// @Param id path int true "Nutrition plan ID"
// @Success 200 {object} map[string]interface{} "Nutrition plan deleted successfully"
// @Failure 404 {object} map[string]interface{} "Nutrition plan not found"
// @Router /plans/nutrition/{id} [delete]
func (nc *NutritionPlanController) DeleteNutritionPlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.planSvc.DeleteNutritionPlan(uint(id)); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Nutrition plan not found",
				"error":   "No nutrition plan exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete nutrition plan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Nutrition plan deleted successfully",
		"data":    nil,
	})
}
