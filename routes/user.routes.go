package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/me", userController.GetMe)
		userRoutes.PUT("/me", userController.UpdateMe)
	}
}
