package controllers

import (
	"log"
	"net/http"
	"strconv"

	"fitcoach/internal/chat"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	hub  *chat.Hub
	repo repository.ChatRepository
}

func NewChatController(hub *chat.Hub, repo repository.ChatRepository) *ChatController {
	return &ChatController{hub: hub, repo: repo}
}

// Connect upgrades the request to a websocket and attaches the user to the
// chat hub until the connection closes.
func (cc *ChatController) Connect(c *gin.Context) {
	userID := c.GetUint("user_id")
	if err := cc.hub.Serve(c.Writer, c.Request, userID); err != nil {
		log.Printf("Chat: websocket upgrade failed for user %d: %v", userID, err)
	}
}

// GetConversation godoc
// @Summary Get chat history with another user
// @Tags chat
// @Produce json
// @Param user_id path int true "Other user ID"
// @Param limit query int false "Max messages (default 50)"
// @Success 200 {object} map[string]interface{} "Messages retrieved successfully"
// @Router /chat/conversations/{user_id} [get]
func (cc *ChatController) GetConversation(c *gin.Context) {
	userID := c.GetUint("user_id")

	otherID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	messages, err := cc.repo.Conversation(userID, uint(otherID), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages retrieved successfully",
		"data": gin.H{
			"messages":     messages,
			"other_online": cc.hub.IsOnline(uint(otherID)),
		},
	})
}

// MarkConversationRead godoc
// @Summary Mark all messages from another user as read
// @Tags chat
// @Produce json
// @Param user_id path int true "Other user ID"
// @Success 200 {object} map[string]interface{} "Messages marked as read"
// @Router /chat/conversations/{user_id}/read [put]
func (cc *ChatController) MarkConversationRead(c *gin.Context) {
	userID := c.GetUint("user_id")

	otherID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := cc.repo.MarkConversationRead(userID, uint(otherID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark messages as read",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Messages marked as read",
		"data":    nil,
	})
}

// GetUnreadCount godoc
// @Summary Count unread messages for the authenticated user
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{} "Unread count retrieved successfully"
// @Router /chat/unread [get]
func (cc *ChatController) GetUnreadCount(c *gin.Context) {
	count, err := cc.repo.UnreadCount(c.GetUint("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to count unread messages",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Unread count retrieved successfully",
		"data":    gin.H{"unread": count},
	})
}
