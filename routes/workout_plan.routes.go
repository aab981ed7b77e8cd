package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWorkoutPlanRoutes(router *gin.Engine, workoutPlanController *controllers.WorkoutPlanController, assignmentController *controllers.AssignmentController) {
	planRoutes := router.Group("/plans/workout")
	planRoutes.Use(middleware.AuthMiddleware())
	{
		planRoutes.POST("/", workoutPlanController.CreateWorkoutPlan)
		planRoutes.GET("/", workoutPlanController.ListWorkoutPlans)
		planRoutes.GET("/:id", workoutPlanController.GetWorkoutPlan)
		planRoutes.PUT("/:id/bulk", workoutPlanController.BulkUpdateWorkoutPlan)
		planRoutes.DELETE("/:id", workoutPlanController.DeleteWorkoutPlan)
		planRoutes.POST("/:id/assign", assignmentController.AssignWorkoutPlan)
	}
}
