package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
	"momentum/internal/services"
)

// PomodoroHandler handles pomodoro-session requests.
type PomodoroHandler struct {
	pomodoroService services.PomodoroServicer
}

// NewPomodoroHandler creates a new PomodoroHandler.
func NewPomodoroHandler(pomodoroService services.PomodoroServicer) *PomodoroHandler {
	return &PomodoroHandler{pomodoroService: pomodoroService}
}

// CreateSessionRequest represents the payload for recording a pomodoro session
type CreateSessionRequest struct {
	Type     models.PomodoroType `json:"type" binding:"required,pomodoro_type"`
	Duration int                 `json:"duration" binding:"required,gt=0"`
	Tasks    []string            `json:"tasks"`
}

// CreateSession records a completed pomodoro session
func (h *PomodoroHandler) CreateSession(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	session, err := h.pomodoroService.CreateSession(userID, req.Type, req.Duration, req.Tasks)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetStats returns today's session count plus all-time work totals
func (h *PomodoroHandler) GetStats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.pomodoroService.GetStats(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
