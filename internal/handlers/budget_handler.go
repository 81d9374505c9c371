package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
	"momentum/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required,max=100"`
	Amount   int64   `json:"amount" binding:"required,gt=0"`
	Period   *string `json:"period" binding:"omitempty,budget_period"`
}

// CreateBudget handles the creation of a new budget
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period := models.BudgetPeriodMonthly
	if req.Period != nil {
		period = models.BudgetPeriod(*req.Period)
	}

	budget, err := h.budgetService.CreateBudget(userID, req.Category, req.Amount, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets returns the user's active budgets
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetActiveBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// UpdateBudgetRequest represents the request payload for updating a budget.
type UpdateBudgetRequest struct {
	Category *string `json:"category" binding:"omitempty,max=100"`
	Amount   *int64  `json:"amount" binding:"omitempty,gt=0"`
	Period   *string `json:"period" binding:"omitempty,budget_period"`
	IsActive *bool   `json:"is_active"`
}

// UpdateBudget handles updating an existing budget
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var period *models.BudgetPeriod
	if req.Period != nil {
		p := models.BudgetPeriod(*req.Period)
		period = &p
	}

	budget, err := h.budgetService.UpdateBudget(userID, budgetID, req.Category, req.Amount, period, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget handles the deletion of a budget
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
