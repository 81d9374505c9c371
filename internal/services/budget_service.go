package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a new budget for a free-text category. A duplicate
// active budget for the same category is rejected with a conflict.
func (s *budgetService) CreateBudget(userID, category string, amount int64, period models.BudgetPeriod) (*models.Budget, error) {
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if period == "" {
		period = models.BudgetPeriodMonthly
	}

	// Pre-check: one active budget per (user, category).
	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND is_active = ?", userID, category, true).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateBudget
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Period:   period,
		IsActive: true,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetActiveBudgets returns the user's active budgets.
func (s *budgetService) GetActiveBudgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ? AND is_active = ?", userID, true).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// getBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) getBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields. Nil fields are unchanged.
func (s *budgetService) UpdateBudget(userID, budgetID string, category *string, amount *int64, period *models.BudgetPeriod, isActive *bool) (*models.Budget, error) {
	budget, err := s.getBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if category != nil {
		if *category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
		}
		updates["category"] = *category
	}
	if amount != nil {
		if *amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *amount
	}
	if period != nil {
		updates["period"] = *period
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(budget).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return budget, nil
}

// DeleteBudget hard-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.getBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Unscoped().Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
