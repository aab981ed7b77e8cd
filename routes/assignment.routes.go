package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAssignmentRoutes(router *gin.Engine, assignmentController *controllers.AssignmentController, adherenceController *controllers.AdherenceController) {
	assignmentRoutes := router.Group("/assignments")
	assignmentRoutes.Use(middleware.AuthMiddleware())
	{
		assignmentRoutes.GET("/", assignmentController.ListAssignments)
		assignmentRoutes.PUT("/workout/:id/status", assignmentController.UpdateWorkoutAssignmentStatus)
		assignmentRoutes.PUT("/nutrition/:id/status", assignmentController.UpdateNutritionAssignmentStatus)

		assignmentRoutes.POST("/nutrition/:id/meals/:meal_id/complete", adherenceController.CompleteMeal)
		assignmentRoutes.GET("/nutrition/:id/adherence", adherenceController.GetAdherence)
		assignmentRoutes.GET("/nutrition/:id/progress", adherenceController.GetProgress)
	}
}
