package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// completeRetries bounds the optimistic-lock retry loop for CompleteHabit.
const completeRetries = 3

// errStaleHabit signals that the version check failed inside the completion
// transaction and the whole read-modify-write cycle should be retried.
var errStaleHabit = errors.New("stale habit version")

// habitService handles habit CRUD and the streak tracker.
type habitService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewHabitService creates a new HabitServicer.
func NewHabitService(db *gorm.DB) HabitServicer {
	return &habitService{db: db, now: time.Now}
}

// CreateHabit creates a new habit with a zero streak.
func (s *habitService) CreateHabit(userID, name, description string, habitType models.HabitType, frequency models.HabitFrequency, goal string, reminderEnabled bool, reminderTime string) (*models.Habit, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if habitType != models.HabitTypePositive && habitType != models.HabitTypeNegative {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be positive or negative")
	}
	if frequency == "" {
		frequency = models.HabitFrequencyDaily
	}
	if reminderTime == "" {
		reminderTime = "09:00"
	}

	habit := &models.Habit{
		UserID:          userID,
		Name:            name,
		Description:     description,
		Type:            habitType,
		Frequency:       frequency,
		Goal:            goal,
		ReminderEnabled: reminderEnabled,
		ReminderTime:    reminderTime,
	}

	if err := s.db.Create(habit).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return habit, nil
}

// GetUserHabits returns the user's habits, newest first.
func (s *habitService) GetUserHabits(userID string) ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&habits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return habits, nil
}

// GetHabitByID retrieves a habit by ID for a specific user, including its
// completion history in chronological order.
func (s *habitService) GetHabitByID(userID, habitID string) (*models.Habit, error) {
	var habit models.Habit
	if err := s.db.
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_at ASC")
		}).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHabitNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &habit, nil
}

// UpdateHabit updates a habit's descriptive fields. Nil fields are unchanged.
// The streak and completion sequence are never touched here.
func (s *habitService) UpdateHabit(userID, habitID string, name, description, goal *string, frequency *models.HabitFrequency, reminderEnabled *bool, reminderTime *string) (*models.Habit, error) {
	habit, err := s.GetHabitByID(userID, habitID)
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
	if description != nil {
		updates["description"] = *description
	}
	if goal != nil {
		updates["goal"] = *goal
	}
	if frequency != nil {
		updates["frequency"] = *frequency
	}
	if reminderEnabled != nil {
		updates["reminder_enabled"] = *reminderEnabled
	}
	if reminderTime != nil {
		updates["reminder_time"] = *reminderTime
	}

	if len(updates) > 0 {
		if err := s.db.Model(habit).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return habit, nil
}

// DeleteHabit deletes a habit and its completion history.
func (s *habitService) DeleteHabit(userID, habitID string) error {
	habit, err := s.GetHabitByID(userID, habitID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habit.ID).Delete(&models.HabitCompletion{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(habit).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// CompleteHabit appends a completion entry and advances the streak counter.
// The insert and the streak update run in one transaction guarded by a
// version check, so two racing completions cannot lose an update; the loser
// re-reads and retries.
func (s *habitService) CompleteHabit(userID, habitID string) (*models.Habit, error) {
	for attempt := 0; attempt < completeRetries; attempt++ {
		habit, err := s.GetHabitByID(userID, habitID)
		if err != nil {
			return nil, err
		}

		now := s.now()
		prev := lastCompletion(habit.Completions)
		newStreak := nextStreak(prev, habit.Streak, now)

		err = s.db.Transaction(func(tx *gorm.DB) error {
			completion := &models.HabitCompletion{
				HabitID:     habit.ID,
				CompletedAt: now,
			}
			if err := tx.Create(completion).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			res := tx.Model(&models.Habit{}).
				Where("id = ? AND version = ?", habit.ID, habit.Version).
				Updates(map[string]interface{}{
					"streak":    newStreak,
					"completed": true,
					"version":   habit.Version + 1,
				})
			if res.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
			}
			if res.RowsAffected == 0 {
				return errStaleHabit
			}
			return nil
		})

		if errors.Is(err, errStaleHabit) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return s.GetHabitByID(userID, habitID)
	}

	return nil, apperrors.ErrHabitConflict
}

// lastCompletion returns the newest completion time, or nil when the
// sequence is empty. Completions are loaded in chronological order.
func lastCompletion(completions []models.HabitCompletion) *time.Time {
	if len(completions) == 0 {
		return nil
	}
	t := completions[len(completions)-1].CompletedAt
	return &t
}

// nextStreak decides the streak value after recording a completion at now.
// First-ever completion starts at 1; a previous completion on yesterday's
// calendar date extends the streak; anything else resets to 1, including a
// second completion on the same day.
func nextStreak(prev *time.Time, current int, now time.Time) int {
	if prev == nil {
		return 1
	}
	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	py, pm, pd := prev.In(now.Location()).Date()
	if py == yy && pm == ym && pd == yd {
		return current + 1
	}
	return 1
}
