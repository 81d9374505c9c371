package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"momentum/internal/services"
)

// InsightHandler serves the AI habit-insight endpoints.
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetRecommendations suggests habits for the goals given in the query string
func (h *InsightHandler) GetRecommendations(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recommendations, err := h.insightService.Recommendations(c.Request.Context(), userID, c.Query("goals"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

// GetAnalysis summarizes the user's habit patterns
func (h *InsightHandler) GetAnalysis(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	analysis, err := h.insightService.Analysis(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// GetMotivation returns a motivational message based on recent progress
func (h *InsightHandler) GetMotivation(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	motivation, err := h.insightService.Motivation(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"motivation": motivation})
}
