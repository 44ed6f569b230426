package controllers

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type ImageController struct{}

func NewImageController() *ImageController {
	return &ImageController{}
}

// GenerateImage godoc
// @Summary Build an image URL for a prompt
// @Description Returns a pollinations.ai image URL for the given prompt; no outbound call is made
// @Tags image
// @Accept json
// @Produce json
// @Param request body object{prompt=string} true "Image prompt"
// @Success 200 {object} map[string]interface{} "Image URL"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /image [post]
func (ic *ImageController) GenerateImage(c *gin.Context) {
	var request struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Random seed keeps repeated prompts from returning the identical image.
	imageURL := fmt.Sprintf(
		"https://pollinations.ai/p/%s?width=1024&height=768&seed=%d",
		url.PathEscape(request.Prompt),
		rand.Intn(1000),
	)

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
