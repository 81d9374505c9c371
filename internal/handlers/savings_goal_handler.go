package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "momentum/internal/errors"
	"momentum/internal/services"
)

// SavingsGoalHandler handles savings-goal requests.
type SavingsGoalHandler struct {
	goalService services.SavingsGoalServicer
}

// NewSavingsGoalHandler creates a new SavingsGoalHandler.
func NewSavingsGoalHandler(goalService services.SavingsGoalServicer) *SavingsGoalHandler {
	return &SavingsGoalHandler{goalService: goalService}
}

// CreateSavingsGoalRequest represents the request payload for creating a savings goal
type CreateSavingsGoalRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	TargetAmount int64   `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *string `json:"target_date"`
}

func parseTargetDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseFlexibleTime(*raw)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return &t, nil
}

// CreateGoal handles the creation of a new savings goal
func (h *SavingsGoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(userID, req.Name, req.TargetAmount, targetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals returns the user's savings goals
func (h *SavingsGoalHandler) GetGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateSavingsGoalRequest represents the request payload for updating a savings goal.
type UpdateSavingsGoalRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	TargetAmount *int64  `json:"target_amount" binding:"omitempty,gt=0"`
	TargetDate   *string `json:"target_date"`
}

// UpdateGoal handles updating an existing savings goal
func (h *SavingsGoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	targetDate, err := parseTargetDate(req.TargetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(userID, goalID, req.Name, req.TargetAmount, targetDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles the deletion of a savings goal
func (h *SavingsGoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Savings goal deleted successfully"})
}
