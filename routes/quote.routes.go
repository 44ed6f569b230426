package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterQuoteRoutes(router *gin.Engine, quoteController *controllers.QuoteController) {
	router.GET("/quote", quoteController.GetQuote)
}
