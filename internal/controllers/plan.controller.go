package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"fitcoach/internal/completion"
	"fitcoach/internal/planner"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

// Completer is the one outbound call the plan pipeline makes.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type PlanController struct {
	planRepo  repository.PlanRepository
	completer Completer
	style     planner.StyleConfig
}

func NewPlanController(planRepo repository.PlanRepository, completer Completer, style planner.StyleConfig) *PlanController {
	return &PlanController{
		planRepo:  planRepo,
		completer: completer,
		style:     style,
	}
}

// GeneratePlan godoc
// @Summary Generate a 7-day workout and diet plan
// @Description Validates the profile, asks the completion provider for a plan, validates the reply and stores it as the active plan
// @Tags plan
// @Accept json
// @Produce json
// @Param profile body planner.Profile true "Fitness profile"
// @Success 200 {object} map[string]interface{} "Plan generated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid profile"
// @Failure 500 {object} map[string]interface{} "Generation or storage failed"
// @Security BearerAuth
// @Router /plan/generate [post]
func (pc *PlanController) GeneratePlan(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Missing user identity",
		})
		return
	}

	var profile planner.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	validated, err := planner.ValidateProfile(profile)
	if err != nil {
		var verr *planner.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid profile",
				"kind":    "validation_error",
				"fields":  verr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid profile",
			"error":   err.Error(),
		})
		return
	}

	prompt := planner.BuildPrompt(validated, pc.style)

	rawText, err := pc.completer.Complete(c.Request.Context(), completion.PlanSystemPrompt, prompt)
	if err != nil {
		log.Printf("completion call failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Plan generation failed, please retry",
			"kind":    "completion_error",
		})
		return
	}

	doc, err := planner.ParsePlan(rawText)
	if err != nil {
		// The raw provider text stays in the server log for diagnosis and is
		// never returned to the client.
		var perr *planner.ParseError
		kind := "parse_error"
		if errors.As(err, &perr) {
			kind = string(perr.Kind)
			log.Printf("plan parse failed for user %d: %v (raw: %q)", userID, perr, perr.Excerpt)
		} else {
			log.Printf("plan parse failed for user %d: %v", userID, err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Plan generation failed, please retry",
			"kind":    kind,
		})
		return
	}

	plan, err := pc.planRepo.SaveActivePlan(userID, *doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save plan",
			"kind":    "storage_error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plan generated successfully",
		"data":    plan.PlanData,
	})
}

// GetActivePlan godoc
// @Summary Get the active plan
// @Description Returns the caller's active plan document, or JSON null when no plan exists yet
// @Tags plan
// @Produce json
// @Success 200 {object} models.PlanDocument "Active plan or null"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve plan"
// @Security BearerAuth
// @Router /plan [get]
func (pc *PlanController) GetActivePlan(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Missing user identity",
		})
		return
	}

	plan, err := pc.planRepo.FindActiveByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve plan",
			"kind":    "storage_error",
			"error":   err.Error(),
		})
		return
	}
	if plan == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, plan.PlanData)
}

// SavePlan godoc
// @Summary Save a plan document
// @Description Validates a client-supplied plan document through the same shape check as generated plans and stores it as the active plan
// @Tags plan
// @Accept json
// @Produce json
// @Param plan body models.PlanDocument true "Plan document"
// @Success 200 {object} map[string]interface{} "Plan saved successfully"
// @Failure 400 {object} map[string]interface{} "Plan document failed validation"
// @Failure 500 {object} map[string]interface{} "Failed to save plan"
// @Security BearerAuth
// @Router /plan [post]
func (pc *PlanController) SavePlan(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "Missing user identity",
		})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	doc, err := planner.ParsePlan(string(body))
	if err != nil {
		var perr *planner.ParseError
		kind := "parse_error"
		if errors.As(err, &perr) {
			kind = string(perr.Kind)
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Plan document failed validation",
			"kind":    kind,
		})
		return
	}

	plan, err := pc.planRepo.SaveActivePlan(userID, *doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save plan",
			"kind":    "storage_error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Plan saved successfully",
		"data":    plan.PlanData,
	})
}
