package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"
	"fitcoach/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterExerciseTypeRoutes(router *gin.Engine, exerciseTypeController *controllers.ExerciseTypeController) {
	exerciseTypeRoutes := router.Group("/exercise-types")
	exerciseTypeRoutes.Use(middleware.AuthMiddleware())
	{
		exerciseTypeRoutes.GET("/", exerciseTypeController.ListExerciseTypes)
		exerciseTypeRoutes.GET("/:id", exerciseTypeController.GetExerciseType)
	}

	coachRoutes := router.Group("/exercise-types")
	coachRoutes.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleCoach))
	{
		coachRoutes.POST("/", exerciseTypeController.CreateExerciseType)
		coachRoutes.PUT("/:id", exerciseTypeController.UpdateExerciseType)
		coachRoutes.DELETE("/:id", exerciseTypeController.DeleteExerciseType)
	}
}
