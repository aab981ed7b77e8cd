package controllers

import (
	"net/http"
	"strconv"
	"time"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
	"fitcoach/internal/services"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	repo              repository.AssignmentRepository
	workoutPlanRepo   repository.WorkoutPlanRepository
	nutritionPlanRepo repository.NutritionPlanRepository
	connectionRepo    repository.ConnectionRepository
	events            services.EventPublisher
}

func NewAssignmentController(
	repo repository.AssignmentRepository,
	workoutPlanRepo repository.WorkoutPlanRepository,
	nutritionPlanRepo repository.NutritionPlanRepository,
	connectionRepo repository.ConnectionRepository,
	events services.EventPublisher,
) *AssignmentController {
	return &AssignmentController{
		repo:              repo,
		workoutPlanRepo:   workoutPlanRepo,
		nutritionPlanRepo: nutritionPlanRepo,
		connectionRepo:    connectionRepo,
		events:            events,
	}
}

type assignRequest struct {
	UserID    uint       `json:"user_id" binding:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=active completed paused cancelled"`
}

// assignable verifies the assigner may assign to the target: self-assignment
// is always allowed, otherwise an accepted connection must exist.
func (ac *AssignmentController) assignable(assignerID, targetID uint) bool {
	if assignerID == targetID {
		return true
	}
	connection, err := ac.connectionRepo.FindByPair(assignerID, targetID)
	if err != nil {
		connection, err = ac.connectionRepo.FindByPair(targetID, assignerID)
	}
	return err == nil && connection.Status == models.ConnectionAccepted
}

// AssignWorkoutPlan godoc
// @Summary Assign a workout plan to a user
// @Tags assignment
// @Accept json
// @Produce json
// @Param id path int true "Workout plan ID"
// @Param assignment body assignRequest true "Assignment target"
// @Success 201 {object} map[string]interface{} "Plan assigned successfully"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Router /plans/workout/{id}/assign [post]
func (ac *AssignmentController) AssignWorkoutPlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.workoutPlanRepo.FindByID(uint(planID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Workout plan not found",
			"error":   "No workout plan exists with the provided ID",
		})
		return
	}

	assignerID := c.GetUint("user_id")
	if !ac.assignable(assignerID, req.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Cannot assign plan",
			"error":   "An accepted connection with the target user is required",
		})
		return
	}

	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}
	assignment := models.WorkoutPlanAssignment{
		WorkoutPlanID: uint(planID),
		UserID:        req.UserID,
		AssignedBy:    assignerID,
		Status:        models.AssignmentActive,
		StartDate:     start,
		EndDate:       req.EndDate,
	}
	if err := ac.repo.CreateWorkout(&assignment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to assign plan",
			"error":   err.Error(),
		})
		return
	}

	if ac.events != nil {
		ac.events.Publish("workout_plan.assigned", gin.H{
			"assignment_id": assignment.ID,
			"plan_id":       planID,
			"user_id":       req.UserID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Plan assigned successfully",
		"data":    assignment,
	})
}

// AssignNutritionPlan godoc
// @Summary Assign a nutrition plan to a user
// @Tags assignment
// @Accept json
// @Produce json
// @Param id path int true "Nutrition plan ID"
// @Param assignment body assignRequest true "Assignment target"
// @Success 201 {object} map[string]interface{} "Plan assigned successfully"
// @Failure 404 {object} map[string]interface{} "Plan not found"
// @Router /plans/nutrition/{id}/assign [post]
func (ac *AssignmentController) AssignNutritionPlan(c *gin.Context) {
	planID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid plan ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := ac.nutritionPlanRepo.FindByID(uint(planID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Nutrition plan not found",
			"error":   "No nutrition plan exists with the provided ID",
		})
		return
	}

	assignerID := c.GetUint("user_id")
	if !ac.assignable(assignerID, req.UserID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Cannot assign plan",
			"error":   "An accepted connection with the target user is required",
		})
		return
	}

	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}
	assignment := models.NutritionPlanAssignment{
		NutritionPlanID: uint(planID),
		UserID:          req.UserID,
		AssignedBy:      assignerID,
		Status:          models.AssignmentActive,
		StartDate:       start,
		EndDate:         req.EndDate,
	}
	if err := ac.repo.CreateNutrition(&assignment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to assign plan",
			"error":   err.Error(),
		})
		return
	}

	if ac.events != nil {
		ac.events.Publish("nutrition_plan.assigned", gin.H{
			"assignment_id": assignment.ID,
			"plan_id":       planID,
			"user_id":       req.UserID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Plan assigned successfully",
		"data":    assignment,
	})
}

// ListAssignments godoc
// @Summary List the authenticated user's plan assignments
// @Tags assignment
// @Produce json
// @Success 200 {object} map[string]interface{} "Assignments retrieved successfully"
// @Router /assignments [get]
func (ac *AssignmentController) ListAssignments(c *gin.Context) {
	userID := c.GetUint("user_id")

	workout, err := ac.repo.FindWorkoutForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve assignments",
			"error":   err.Error(),
		})
		return
	}
	nutrition, err := ac.repo.FindNutritionForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve assignments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assignments retrieved successfully",
		"data": gin.H{
			"workout":   workout,
			"nutrition": nutrition,
		},
	})
}

// UpdateWorkoutAssignmentStatus godoc
// @Summary Update a workout assignment's lifecycle status
// @Tags assignment
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Assignment updated successfully"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Router /assignments/workout/{id}/status [put]
func (ac *AssignmentController) UpdateWorkoutAssignmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assignment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	assignment, err := ac.repo.FindWorkoutByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Assignment not found",
			"error":   "No assignment exists with the provided ID",
		})
		return
	}

	if err := ac.repo.UpdateWorkoutStatus(assignment.ID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update assignment",
			"error":   err.Error(),
		})
		return
	}
	assignment.Status = req.Status

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assignment updated successfully",
		"data":    assignment,
	})
}

// UpdateNutritionAssignmentStatus godoc
// @Summary Update a nutrition assignment's lifecycle status
// @Tags assignment
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Assignment updated successfully"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Router /assignments/nutrition/{id}/status [put]
func (ac *AssignmentController) UpdateNutritionAssignmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assignment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	assignment, err := ac.repo.FindNutritionByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Assignment not found",
			"error":   "No assignment exists with the provided ID",
		})
		return
	}

	if err := ac.repo.UpdateNutritionStatus(assignment.ID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update assignment",
			"error":   err.Error(),
		})
		return
	}
	assignment.Status = req.Status

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Assignment updated successfully",
		"data":    assignment,
	})
}
