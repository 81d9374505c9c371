package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "momentum/internal/errors"
	"momentum/internal/services"
)

// AnalyticsHandler serves the financial dashboard and report endpoints.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDashboard returns the income/expense summary, category breakdowns, and
// recent transactions. startDate and endDate are optional but must be given
// together; without them the window is the current calendar month.
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var startDate, endDate *time.Time
	if v := c.Query("startDate"); v != "" {
		t, parseErr := parseFlexibleTime(v)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "invalid startDate format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		startDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, parseErr := parseFlexibleTime(v)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "invalid endDate format, use RFC3339 or YYYY-MM-DD"))
			return
		}
		endDate = &t
	}

	result, err := h.analyticsService.GetDashboard(userID, startDate, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReport returns per-category and per-day breakdowns for an explicit
// date range. Both startDate and endDate are required.
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	startRaw := c.Query("startDate")
	endRaw := c.Query("endDate")
	if startRaw == "" || endRaw == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "startDate and endDate are required"))
		return
	}

	startDate, err := parseFlexibleTime(startRaw)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "invalid startDate format, use RFC3339 or YYYY-MM-DD"))
		return
	}
	endDate, err := parseFlexibleTime(endRaw)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidDateRange, "invalid endDate format, use RFC3339 or YYYY-MM-DD"))
		return
	}

	result, err := h.analyticsService.GetReport(userID, startDate, endDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
