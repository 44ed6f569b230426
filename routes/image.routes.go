package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterImageRoutes(router *gin.Engine, imageController *controllers.ImageController) {
	router.POST("/image", imageController.GenerateImage)
}
