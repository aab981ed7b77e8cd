package controllers

import (
	"net/http"

	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Router /users/me [get]
func (uc *UserController) GetMe(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := uc.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	Specialty *string `json:"specialty"`
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Param profile body updateProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "User updated successfully"
// @Router /users/me [put]
func (uc *UserController) UpdateMe(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Specialty != nil {
		user.Specialty = *req.Specialty
	}

	if err := uc.repo.Update(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User updated successfully",
		"data":    user,
	})
}
