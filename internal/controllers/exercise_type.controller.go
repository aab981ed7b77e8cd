package controllers

import (
	"net/http"
	"strconv"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

type ExerciseTypeController struct {
	repo repository.ExerciseTypeRepository
}

func NewExerciseTypeController(repo repository.ExerciseTypeRepository) *ExerciseTypeController {
	return &ExerciseTypeController{repo: repo}
}

// CreateExerciseType godoc
// @Summary Create an exercise type
// @Tags exercise-type
// @Accept json
// @Produce json
// @Param exerciseType body models.ExerciseType true "Exercise type data"
// @Success 201 {object} map[string]interface{} "Exercise type created successfully"
// @Router /exercise-types [post]
func (ec *ExerciseTypeController) CreateExerciseType(c *gin.Context) {
	var exerciseType models.ExerciseType
	if err := c.ShouldBindJSON(&exerciseType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	exerciseType.CreatedBy = c.GetUint("user_id")

	if err := ec.repo.Create(&exerciseType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create exercise type",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Exercise type created successfully",
		"data":    exerciseType,
	})
}

// ListExerciseTypes godoc
// @Summary List exercise types
// @Tags exercise-type
// @Produce json
// @Param muscle_group query string false "Filter by muscle group"
// @Success 200 {object} map[string]interface{} "Exercise types retrieved successfully"
// @Router /exercise-types [get]
func (ec *ExerciseTypeController) ListExerciseTypes(c *gin.Context) {
	var (
		exerciseTypes []models.ExerciseType
		err           error
	)

	if muscleGroup := c.Query("muscle_group"); muscleGroup != "" {
		exerciseTypes, err = ec.repo.FindByMuscleGroup(muscleGroup)
	} else {
		exerciseTypes, err = ec.repo.FindAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve exercise types",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise types retrieved successfully",
		"data":    exerciseTypes,
	})
}

// GetExerciseType godoc
// @Summary Get an exercise type by ID
// @Tags exercise-type
// @Produce json
// @Param id path int true "Exercise type ID"
// @Success 200 {object} map[string]interface{} "Exercise type retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Exercise type not found"
// @Router /exercise-types/{id} [get]
func (ec *ExerciseTypeController) GetExerciseType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid exercise type ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	exerciseType, err := ec.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Exercise type not found",
			"error":   "No exercise type exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise type retrieved successfully",
		"data":    exerciseType,
	})
}

// UpdateExerciseType godoc
// @Summary Update an exercise type
// @Tags exercise-type
// @Accept json
// @Produce json
// @Param id path int true "Exercise type ID"
// @Param exerciseType body models.ExerciseType true "Exercise type data"
// @Success 200 {object} map[string]interface{} "Exercise type updated successfully"
// @Router /exercise-types/{id} [put]
func (ec *ExerciseTypeController) UpdateExerciseType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid exercise type ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	existing, err := ec.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Exercise type not found",
			"error":   "No exercise type exists with the provided ID",
		})
		return
	}

	var exerciseType models.ExerciseType
	if err := c.ShouldBindJSON(&exerciseType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	exerciseType.ID = existing.ID
	exerciseType.CreatedBy = existing.CreatedBy

	if err := ec.repo.Update(&exerciseType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update exercise type",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise type updated successfully",
		"data":    exerciseType,
	})
}

// DeleteExerciseType godoc
// @Summary Delete an exercise type
// @Tags exercise-type
// @Produce json
// @Param id path int true "Exercise type ID"
// @Success 200 {object} map[string]interface{} "Exercise type deleted successfully"
// @Router /exercise-types/{id} [delete]
func (ec *ExerciseTypeController) DeleteExerciseType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid exercise type ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := ec.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Exercise type not found",
			"error":   "No exercise type exists with the provided ID",
		})
		return
	}

	if err := ec.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete exercise type",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Exercise type deleted successfully",
		"data":    nil,
	})
}
