package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// taskService handles task-related business logic.
type taskService struct {
	db *gorm.DB
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(db *gorm.DB) TaskServicer {
	return &taskService{db: db}
}

// CreateTask creates a new task.
func (s *taskService) CreateTask(userID, title, description string, dueDate *time.Time) (*models.Task, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}

	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	}

	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return task, nil
}

// GetUserTasks returns the user's tasks, newest first.
func (s *taskService) GetUserTasks(userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tasks, nil
}

func (s *taskService) getTaskByID(userID, taskID string) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}

// UpdateTask updates a task. Toggling completion stamps or clears the
// completion time.
func (s *taskService) UpdateTask(userID, taskID string, title, description *string, dueDate *time.Time, completed *bool) (*models.Task, error) {
	task, err := s.getTaskByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != nil {
		if *title == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title must not be empty")
		}
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}
	if completed != nil {
		updates["completed"] = *completed
		if *completed {
			now := time.Now()
			updates["completed_at"] = &now
		} else {
			updates["completed_at"] = nil
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return task, nil
}

// DeleteTask deletes a task.
func (s *taskService) DeleteTask(userID, taskID string) error {
	task, err := s.getTaskByID(userID, taskID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
