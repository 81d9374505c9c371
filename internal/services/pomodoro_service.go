package services

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// PomodoroStats summarizes a user's pomodoro history.
type PomodoroStats struct {
	Today          int                      `json:"today"`
	TotalPomodoros int                      `json:"totalPomodoros"`
	TotalWorkTime  int                      `json:"totalWorkTime"` // minutes
	TodaySessions  []models.PomodoroSession `json:"todayPomodoros"`
}

// pomodoroService handles pomodoro-session business logic.
type pomodoroService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPomodoroService creates a new PomodoroServicer.
func NewPomodoroService(db *gorm.DB) PomodoroServicer {
	return &pomodoroService{db: db, now: time.Now}
}

// CreateSession records a completed pomodoro session.
func (s *pomodoroService) CreateSession(userID string, sessionType models.PomodoroType, duration int, tasks []string) (*models.PomodoroSession, error) {
	if duration <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "duration must be greater than zero")
	}

	if tasks == nil {
		tasks = []string{}
	}
	taskJSON, err := json.Marshal(tasks)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	session := &models.PomodoroSession{
		UserID:      userID,
		Type:        sessionType,
		Duration:    duration,
		CompletedAt: s.now(),
		Tasks:       string(taskJSON),
	}

	if err := s.db.Create(session).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return session, nil
}

// GetStats returns today's session count plus all-time work totals.
func (s *pomodoroService) GetStats(userID string) (*PomodoroStats, error) {
	now := s.now()
	year, month, day := now.Date()
	todayStart := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)

	var todaySessions []models.PomodoroSession
	if err := s.db.
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, todayStart, tomorrow).
		Find(&todaySessions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalPomodoros int64
	if err := s.db.Model(&models.PomodoroSession{}).
		Where("user_id = ? AND type = ?", userID, models.PomodoroTypeWork).
		Count(&totalPomodoros).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalWorkSeconds int64
	if err := s.db.Model(&models.PomodoroSession{}).
		Where("user_id = ? AND type = ?", userID, models.PomodoroTypeWork).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&totalWorkSeconds).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &PomodoroStats{
		Today:          len(todaySessions),
		TotalPomodoros: int(totalPomodoros),
		TotalWorkTime:  int(totalWorkSeconds / 60),
		TodaySessions:  todaySessions,
	}, nil
}
