package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterLogRoutes(router *gin.Engine, logController *controllers.LogController, auth gin.HandlerFunc) {
	logRoutes := router.Group("/logs")
	logRoutes.Use(auth)
	{
		logRoutes.GET("", logController.GetLogs)
		logRoutes.POST("", logController.CreateLog)
		logRoutes.DELETE("", logController.DeleteLog)
	}
}
