package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthController struct {
	userRepo       repository.UserRepository
	googleClientID string
	jwtSecret      string
}

func NewAuthController(userRepo repository.UserRepository, googleClientID, jwtSecret string) *AuthController {
	return &AuthController{
		userRepo:       userRepo,
		googleClientID: googleClientID,
		jwtSecret:      jwtSecret,
	}
}

// GoogleAuth godoc
// @Summary Sign in with a Google ID token
// @Description Verifies a Google ID token, upserts the user and returns an app JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{token=string} true "Google ID token"
// @Success 200 {object} map[string]interface{} "Authentication successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid Google ID token"
// @Router /auth/google [post]
func (ac *AuthController) GoogleAuth(c *gin.Context) {
	var authRequest struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&authRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp, err := http.Get("https://oauth2.googleapis.com/tokeninfo?id_token=" + authRequest.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify token with Google",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token verification failed",
		})
		return
	}

	var tokenInfo struct {
		Sub      string `json:"sub"`
		Audience string `json:"aud"`
		Email    string `json:"email"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to decode token info",
			"error":   err.Error(),
		})
		return
	}

	if tokenInfo.Audience != ac.googleClientID {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token was issued for a different client",
		})
		return
	}
	if tokenInfo.Sub == "" || tokenInfo.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token is missing subject or email",
		})
		return
	}

	user := &models.User{
		GoogleID: tokenInfo.Sub,
		Email:    tokenInfo.Email,
		Name:     tokenInfo.Name,
	}
	if err := ac.userRepo.UpsertByGoogleID(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save user",
			"error":   err.Error(),
		})
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ac.jwtSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to issue token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Authentication successful",
		"data": gin.H{
			"token": signed,
			"user":  user,
		},
	})
}
