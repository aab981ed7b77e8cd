package controllers

import (
	"net/http"
	"strconv"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
	"fitcoach/internal/services"

	"github.com/gin-gonic/gin"
)

type ConnectionController struct {
	repo     repository.ConnectionRepository
	userRepo repository.UserRepository
	events   services.EventPublisher
}

func NewConnectionController(repo repository.ConnectionRepository, userRepo repository.UserRepository, events services.EventPublisher) *ConnectionController {
	return &ConnectionController{repo: repo, userRepo: userRepo, events: events}
}

type connectionRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message"`
}

// RequestConnection godoc
// @Summary Request a coach/trainee connection
// @Description A trainee requests a coach (or vice versa) by email
// @Tags connection
// @Accept json
// @Produce json
// @Param request body connectionRequest true "Target user email"
// @Success 201 {object} map[string]interface{} "Connection requested"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "Connection already exists"
// @Router /connections [post]
func (cc *ConnectionController) RequestConnection(c *gin.Context) {
	userID := c.GetUint("user_id")
	role := c.GetString("role")

	var req connectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	target, err := cc.userRepo.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided email",
		})
		return
	}

	if target.Role == role {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid connection target",
			"error":   "Connections link a coach and a trainee",
		})
		return
	}

	coachID, traineeID := userID, target.ID
	if role == models.RoleTrainee {
		coachID, traineeID = target.ID, userID
	}

	if _, err := cc.repo.FindByPair(coachID, traineeID); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Connection already exists",
			"error":   "A connection between these users already exists",
		})
		return
	}

	connection := models.Connection{
		CoachID:     coachID,
		TraineeID:   traineeID,
		RequestedBy: userID,
		Message:     req.Message,
	}
	if err := cc.repo.Create(&connection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create connection",
			"error":   err.Error(),
		})
		return
	}

	if cc.events != nil {
		cc.events.Publish("connection.requested", gin.H{
			"connection_id": connection.ID,
			"requested_by":  userID,
			"target_id":     target.ID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Connection requested",
		"data":    connection,
	})
}

// ListConnections godoc
// @Summary List connections for the authenticated user
// @Tags connection
// @Produce json
// @Success 200 {object} map[string]interface{} "Connections retrieved successfully"
// @Router /connections [get]
func (cc *ConnectionController) ListConnections(c *gin.Context) {
	userID := c.GetUint("user_id")

	connections, err := cc.repo.FindForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve connections",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Connections retrieved successfully",
		"data":    connections,
	})
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

// RespondToConnection godoc
// @Summary Accept or reject a pending connection
// @Tags connection
// @Accept json
// @Produce json
// @Param id path int true "Connection ID"
// @Param response body respondRequest true "Accept or reject"
// @Success 200 {object} map[string]interface{} "Connection updated"
// @Failure 404 {object} map[string]interface{} "Connection not found"
// @Router /connections/{id}/respond [put]
func (cc *ConnectionController) RespondToConnection(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid connection ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	connection, err := cc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Connection not found",
			"error":   "No connection exists with the provided ID",
		})
		return
	}

	// Only the party who did not request it can respond.
	if connection.RequestedBy == userID || (connection.CoachID != userID && connection.TraineeID != userID) {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Cannot respond to this connection",
			"error":   "Only the other party can accept or reject a request",
		})
		return
	}

	status := models.ConnectionRejected
	if req.Accept {
		status = models.ConnectionAccepted
	}
	if err := cc.repo.UpdateStatus(connection.ID, status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update connection",
			"error":   err.Error(),
		})
		return
	}
	connection.Status = status

	if cc.events != nil {
		cc.events.Publish("connection.responded", gin.H{
			"connection_id": connection.ID,
			"status":        status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Connection updated",
		"data":    connection,
	})
}
