package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	workoutRepo repository.WorkoutLogRepository
	mealRepo    repository.MealLogRepository
	weightRepo  repository.WeightLogRepository
}

func NewLogController(
	workoutRepo repository.WorkoutLogRepository,
	mealRepo repository.MealLogRepository,
	weightRepo repository.WeightLogRepository,
) *LogController {
	return &LogController{
		workoutRepo: workoutRepo,
		mealRepo:    mealRepo,
		weightRepo:  weightRepo,
	}
}

func parseLogDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// GetLogs godoc
// @Summary List log entries
// @Description Returns the caller's entries for one log type. Workout and meal logs are ordered newest first; weight logs are ordered oldest first for charting.
// @Tags logs
// @Produce json
// @Param type query string true "Log type" Enums(workout, meal, weight)
// @Success 200 {object} map[string]interface{} "Logs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid log type"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve logs"
// @Security BearerAuth
// @Router /logs [get]
func (lc *LogController) GetLogs(c *gin.Context) {
	userID := c.GetUint("user_id")

	var data interface{}
	var err error
	switch c.Query("type") {
	case "workout":
		data, err = lc.workoutRepo.FindAllByUserID(userID)
	case "meal":
		data, err = lc.mealRepo.FindAllByUserID(userID)
	case "weight":
		data, err = lc.weightRepo.FindAllByUserID(userID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log type",
			"error":   "type must be workout, meal or weight",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve logs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logs retrieved successfully",
		"data":    data,
	})
}

// CreateLog godoc
// @Summary Append a log entry
// @Description Appends one workout, meal or weight entry for the caller
// @Tags logs
// @Accept json
// @Produce json
// @Param request body object{type=string,data=object} true "Log type and entry data"
// @Success 201 {object} map[string]interface{} "Log created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create log"
// @Security BearerAuth
// @Router /logs [post]
func (lc *LogController) CreateLog(c *gin.Context) {
	userID := c.GetUint("user_id")

	var request struct {
		Type string          `json:"type" binding:"required"`
		Data json.RawMessage `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	var created interface{}
	switch request.Type {
	case "workout":
		var payload struct {
			Date     string  `json:"date"`
			Exercise string  `json:"exercise"`
			Sets     int     `json:"sets"`
			Reps     int     `json:"reps"`
			Weight   float64 `json:"weight"`
		}
		if err := json.Unmarshal(request.Data, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		date, err := parseLogDate(payload.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   err.Error(),
			})
			return
		}
		entry := &models.WorkoutLog{
			UserID:   userID,
			Date:     date,
			Exercise: payload.Exercise,
			Sets:     payload.Sets,
			Reps:     payload.Reps,
			Weight:   payload.Weight,
		}
		if err := lc.workoutRepo.Create(entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create log",
				"error":   err.Error(),
			})
			return
		}
		created = entry
	case "meal":
		var payload struct {
			Date     string  `json:"date"`
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Carbs    float64 `json:"carbs"`
			Fats     float64 `json:"fats"`
		}
		if err := json.Unmarshal(request.Data, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		date, err := parseLogDate(payload.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   err.Error(),
			})
			return
		}
		entry := &models.MealLog{
			UserID:   userID,
			Date:     date,
			Name:     payload.Name,
			Calories: payload.Calories,
			Protein:  payload.Protein,
			Carbs:    payload.Carbs,
			Fats:     payload.Fats,
		}
		if err := lc.mealRepo.Create(entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create log",
				"error":   err.Error(),
			})
			return
		}
		created = entry
	case "weight":
		var payload struct {
			Date   string  `json:"date"`
			Weight float64 `json:"weight"`
		}
		if err := json.Unmarshal(request.Data, &payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   err.Error(),
			})
			return
		}
		date, err := parseLogDate(payload.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid date",
				"error":   err.Error(),
			})
			return
		}
		entry := &models.WeightLog{
			UserID: userID,
			Date:   date,
			Weight: payload.Weight,
		}
		if err := lc.weightRepo.Create(entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create log",
				"error":   err.Error(),
			})
			return
		}
		created = entry
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log type",
			"error":   "type must be workout, meal or weight",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Log created successfully",
		"data":    created,
	})
}

// DeleteLog godoc
// @Summary Delete log entries
// @Description Deletes one entry by id, or every weight entry when all=true
// @Tags logs
// @Produce json
// @Param type query string true "Log type" Enums(workout, meal, weight)
// @Param id query int false "Entry ID"
// @Param all query bool false "Delete all (weight only)"
// @Success 200 {object} map[string]interface{} "Log deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Failed to delete log"
// @Security BearerAuth
// @Router /logs [delete]
func (lc *LogController) DeleteLog(c *gin.Context) {
	userID := c.GetUint("user_id")
	logType := c.Query("type")

	if logType == "weight" && c.Query("all") == "true" {
		if err := lc.weightRepo.DeleteAllByUserID(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to delete logs",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "All weight logs deleted successfully",
		})
		return
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	switch logType {
	case "workout":
		err = lc.workoutRepo.Delete(userID, uint(id))
	case "meal":
		err = lc.mealRepo.Delete(userID, uint(id))
	case "weight":
		err = lc.weightRepo.Delete(userID, uint(id))
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid log type",
			"error":   "type must be workout, meal or weight",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete log",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Log deleted successfully",
	})
}
