package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
)

// noteService handles note-related business logic.
type noteService struct {
	db *gorm.DB
}

// NewNoteService creates a new NoteServicer.
func NewNoteService(db *gorm.DB) NoteServicer {
	return &noteService{db: db}
}

// CreateNote creates a new note. Title and description are both required.
func (s *noteService) CreateNote(userID, title, description string) (*models.Note, error) {
	if title == "" || description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and description are required")
	}

	note := &models.Note{
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// GetUserNotes returns the user's notes, newest first.
func (s *noteService) GetUserNotes(userID string) ([]models.Note, error) {
	var notes []models.Note
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return notes, nil
}

// UpdateNote replaces a note's title and description.
func (s *noteService) UpdateNote(userID, noteID, title, description string) (*models.Note, error) {
	if title == "" || description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title and description are required")
	}

	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&note).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &note, nil
}

// DeleteNote deletes a note.
func (s *noteService) DeleteNote(userID, noteID string) error {
	var note models.Note
	if err := s.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Delete(&note).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
