package routes

import (
	"fitcoach/internal/controllers"
	"fitcoach/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNutritionPlanRoutes(router *gin.Engine, nutritionPlanController *controllers.NutritionPlanController, assignmentController *controllers.AssignmentController) {
	planRoutes := router.Group("/plans/nutrition")
	planRoutes.Use(middleware.AuthMiddleware())
	{
		planRoutes.POST("/", nutritionPlanController.CreateNutritionPlan)
		planRoutes.GET("/", nutritionPlanController.ListNutritionPlans)
		planRoutes.GET("/:id", nutritionPlanController.GetNutritionPlan)
		planRoutes.PUT("/:id/bulk", nutritionPlanController.BulkUpdateNutritionPlan)
		planRoutes.DELETE("/:id", nutritionPlanController.DeleteNutritionPlan)
		planRoutes.POST("/:id/assign", assignmentController.AssignNutritionPlan)
	}
}
