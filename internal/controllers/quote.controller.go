package controllers

import (
	"log"
	"net/http"
	"time"

	"fitcoach/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	quoteSystemPrompt = "You are a motivational fitness coach. Generate short, powerful motivational quotes about fitness, health, and personal growth. Keep them under 20 words."
	quoteUserPrompt   = "Give me one powerful motivational quote about fitness and transformation."
	fallbackQuote     = "Your only limit is you."
)

type QuoteController struct {
	completer  Completer
	quoteCache *cache.RedisClient
}

// NewQuoteController accepts a nil cache; quotes are then generated on every
// request instead of once per day.
func NewQuoteController(completer Completer, quoteCache *cache.RedisClient) *QuoteController {
	return &QuoteController{completer: completer, quoteCache: quoteCache}
}

// GetQuote godoc
// @Summary Get a motivational quote
// @Description Returns the quote of the day; falls back to a canned quote when the provider is unavailable
// @Tags quote
// @Produce json
// @Success 200 {object} map[string]interface{} "Quote"
// @Router /quote [get]
func (qc *QuoteController) GetQuote(c *gin.Context) {
	day := time.Now().UTC().Format("2006-01-02")

	if qc.quoteCache != nil {
		if quote, err := qc.quoteCache.GetQuote(day); err == nil && quote != "" {
			c.JSON(http.StatusOK, gin.H{"quote": quote})
			return
		}
	}

	quote, err := qc.completer.Complete(c.Request.Context(), quoteSystemPrompt, quoteUserPrompt)
	if err != nil || quote == "" {
		// Quote failures never reach the user; serve the canned quote.
		if err != nil {
			log.Printf("quote generation failed: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"quote": fallbackQuote})
		return
	}

	if qc.quoteCache != nil {
		if err := qc.quoteCache.StoreQuote(day, quote, 24*time.Hour); err != nil {
			log.Printf("failed to cache quote: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}
