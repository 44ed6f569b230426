package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPlanRoutes(router *gin.Engine, planController *controllers.PlanController, auth gin.HandlerFunc) {
	planRoutes := router.Group("/plan")
	planRoutes.Use(auth)
	{
		planRoutes.POST("/generate", planController.GeneratePlan)
		planRoutes.GET("", planController.GetActivePlan)
		planRoutes.POST("", planController.SavePlan)
	}
}
