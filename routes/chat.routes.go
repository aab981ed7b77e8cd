package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.Engine, chatController *controllers.ChatController) {
	chatRoutes := router.Group("/chat")
	chatRoutes.Use(middleware.AuthMiddleware())
	{
		chatRoutes.GET("/ws", chatController.Connect)
		chatRoutes.GET("/conversations/:user_id", chatController.GetConversation)
		chatRoutes.PUT("/conversations/:user_id/read", chatController.MarkConversationRead)
		chatRoutes.GET("/unread", chatController.GetUnreadCount)
	}
}
