package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterConnectionRoutes(router *gin.Engine, connectionController *controllers.ConnectionController) {
	connectionRoutes := router.Group("/connections")
	connectionRoutes.Use(middleware.AuthMiddleware())
	{
		connectionRoutes.POST("/", connectionController.RequestConnection)
		connectionRoutes.GET("/", connectionController.ListConnections)
		connectionRoutes.PUT("/:id/respond", connectionController.RespondToConnection)
	}
}
