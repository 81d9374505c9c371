package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// savingsGoalService handles savings-goal business logic.
type savingsGoalService struct {
	db *gorm.DB
}

// NewSavingsGoalService creates a new SavingsGoalServicer.
func NewSavingsGoalService(db *gorm.DB) SavingsGoalServicer {
	return &savingsGoalService{db: db}
}

// CreateGoal creates a new savings goal.
func (s *savingsGoalService) CreateGoal(userID, name string, targetAmount int64, targetDate *time.Time) (*models.SavingsGoal, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if targetAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must not be negative")
	}

	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetUserGoals returns all savings goals for the user.
func (s *savingsGoalService) GetUserGoals(userID string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

func (s *savingsGoalService) getGoalByID(userID, goalID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavingsGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal updates an existing goal's fields. Nil fields are unchanged.
func (s *savingsGoalService) UpdateGoal(userID, goalID string, name *string, targetAmount *int64, targetDate *time.Time) (*models.SavingsGoal, error) {
	goal, err := s.getGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		if *name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
		}
		updates["name"] = *name
	}
	if targetAmount != nil {
		if *targetAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must not be negative")
		}
		updates["target_amount"] = *targetAmount
	}
	if targetDate != nil {
		updates["target_date"] = targetDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return goal, nil
}

// DeleteGoal deletes a savings goal.
func (s *savingsGoalService) DeleteGoal(userID, goalID string) error {
	goal, err := s.getGoalByID(userID, goalID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
