package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "momentum/internal/errors"
	"momentum/internal/services"
)

// NoteHandler handles note-related requests.
type NoteHandler struct {
	noteService services.NoteServicer
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService services.NoteServicer) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// NoteRequest represents the payload for creating or updating a note.
// Both fields are required in both cases.
type NoteRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=10000"`
}

// CreateNote handles the creation of a new note
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.CreateNote(userID, req.Title, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"note": note})
}

// GetNotes returns the user's notes
func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	notes, err := h.noteService.GetUserNotes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// UpdateNote handles updating an existing note
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	note, err := h.noteService.UpdateNote(userID, noteID, req.Title, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"note": note})
}

// DeleteNote handles the deletion of a note
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	noteID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.noteService.DeleteNote(userID, noteID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
