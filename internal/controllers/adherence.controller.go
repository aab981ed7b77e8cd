package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"fitcoach/internal/models"
	"fitcoach/internal/services"

	"github.com/gin-gonic/gin"
)

type AdherenceController struct {
	svc *services.AdherenceService
}

func NewAdherenceController(svc *services.AdherenceService) *AdherenceController {
	return &AdherenceController{svc: svc}
}

// CompleteMeal godoc
// @Summary Record a meal completion
// @Description Creates the day's adherence record if absent, upserts the completion and recomputes all derived adherence fields
// @Tags adherence
// @Accept json
// @Produce json
// @Param id path int true "Nutrition assignment ID"
// @Param meal_id path int true "Meal ID"
// @Param completion body models.MealCompletionRequest false "Completion details"
// @Success 201 {object} map[string]interface{} "Meal completion recorded"
// @Failure 404 {object} map[string]interface{} "Assignment or meal not found"
// @Router /assignments/nutrition/{id}/meals/{meal_id}/complete [post]
func (ad *AdherenceController) CompleteMeal(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assignment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}
	mealID, err := strconv.ParseUint(c.Param("meal_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid meal ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req models.MealCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	completion, err := ad.svc.CompleteMeal(uint(assignmentID), uint(mealID), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Assignment not found",
				"error":   "No nutrition assignment exists with the provided ID",
			})
		case errors.Is(err, services.ErrMealNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Meal not found",
				"error":   "No meal with the provided ID belongs to the assigned plan",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to record meal completion",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meal completion recorded",
		"data":    completion,
	})
}

// GetAdherence godoc
// @Summary Get an assignment's adherence records
// @Tags adherence
// @Produce json
// @Param id path int true "Nutrition assignment ID"
// @Success 200 {object} map[string]interface{} "Adherence records retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Router /assignments/nutrition/{id}/adherence [get]
func (ad *AdherenceController) GetAdherence(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assignment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	records, err := ad.svc.GetAdherence(uint(assignmentID))
	if err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Assignment not found",
				"error":   "No nutrition assignment exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve adherence records",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Adherence records retrieved successfully",
		"data":    records,
	})
}

// GetProgress godoc
// @Summary Get an assignment's progress summary
// @Tags adherence
// @Produce json
// @Param id path int true "Nutrition assignment ID"
// @Success 200 {object} map[string]interface{} "Progress retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Router /assignments/nutrition/{id}/progress [get]
func (ad *AdherenceController) GetProgress(c *gin.Context) {
	assignmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assignment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	summary, err := ad.svc.GetProgress(uint(assignmentID))
	if err != nil {
		if errors.Is(err, services.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Assignment not found",
				"error":   "No nutrition assignment exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve progress",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Progress retrieved successfully",
		"data":    summary,
	})
}
