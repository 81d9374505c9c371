package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
	"momentum/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction creates a new transaction for a user
func (s *transactionService) CreateTransaction(
	userID string,
	txType models.TransactionType,
	amount int64,
	category, description, source string,
	date time.Time,
	isRecurring bool,
	frequency models.RecurringFrequency,
) (*models.Transaction, error) {
	// Validate input
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}
	if frequency == "" {
		frequency = models.RecurringNone
	}

	transaction := &models.Transaction{
		UserID:             userID,
		Type:               txType,
		Amount:             amount,
		Category:           category,
		Description:        description,
		Source:             source,
		Date:               date,
		IsRecurring:        isRecurring,
		RecurringFrequency: frequency,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions, newest first.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction mutates a transaction in place. Nil fields are unchanged.
func (s *transactionService) UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Type != nil {
		if *update.Type != models.TransactionTypeIncome && *update.Type != models.TransactionTypeExpense {
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *update.Type
	}
	if update.Amount != nil {
		if *update.Amount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
		}
		updates["amount"] = *update.Amount
	}
	if update.Category != nil {
		if *update.Category == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category must not be empty")
		}
		updates["category"] = *update.Category
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Source != nil {
		updates["source"] = *update.Source
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}
	if update.IsRecurring != nil {
		updates["is_recurring"] = *update.IsRecurring
	}
	if update.RecurringFrequency != nil {
		updates["recurring_frequency"] = *update.RecurringFrequency
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction deletes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
