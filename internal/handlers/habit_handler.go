package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "momentum/internal/errors"
	"momentum/internal/models"
	"momentum/internal/services"
)

// HabitHandler handles habit CRUD and streak completion requests.
type HabitHandler struct {
	habitService services.HabitServicer
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habitService services.HabitServicer) *HabitHandler {
	return &HabitHandler{habitService: habitService}
}

// CreateHabitRequest represents the request payload for creating a habit
type CreateHabitRequest struct {
	Name            string           `json:"name" binding:"required,max=100"`
	Description     string           `json:"description" binding:"max=500"`
	Type            models.HabitType `json:"type" binding:"required,habit_type"`
	Frequency       *string          `json:"frequency" binding:"omitempty,habit_frequency"`
	Goal            string           `json:"goal" binding:"max=500"`
	ReminderEnabled bool             `json:"reminder_enabled"`
	ReminderTime    *string          `json:"reminder_time" binding:"omitempty,reminder_time"`
}

// CreateHabit handles the creation of a new habit
func (h *HabitHandler) CreateHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	frequency := models.HabitFrequencyDaily
	if req.Frequency != nil {
		frequency = models.HabitFrequency(*req.Frequency)
	}
	reminderTime := ""
	if req.ReminderTime != nil {
		reminderTime = *req.ReminderTime
	}

	habit, err := h.habitService.CreateHabit(userID, req.Name, req.Description, req.Type, frequency, req.Goal, req.ReminderEnabled, reminderTime)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// GetHabits returns the user's habits
func (h *HabitHandler) GetHabits(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habits, err := h.habitService.GetUserHabits(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// GetHabitByID returns a habit with its completion history
func (h *HabitHandler) GetHabitByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	habit, err := h.habitService.GetHabitByID(userID, habitID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// UpdateHabitRequest represents the request payload for updating a habit.
// Streak and completion history are never updated through this endpoint.
type UpdateHabitRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	Description     *string `json:"description" binding:"omitempty,max=500"`
	Frequency       *string `json:"frequency" binding:"omitempty,habit_frequency"`
	Goal            *string `json:"goal" binding:"omitempty,max=500"`
	ReminderEnabled *bool   `json:"reminder_enabled"`
	ReminderTime    *string `json:"reminder_time" binding:"omitempty,reminder_time"`
}

// UpdateHabit handles updating an existing habit
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var frequency *models.HabitFrequency
	if req.Frequency != nil {
		f := models.HabitFrequency(*req.Frequency)
		frequency = &f
	}

	habit, err := h.habitService.UpdateHabit(userID, habitID, req.Name, req.Description, req.Goal, frequency, req.ReminderEnabled, req.ReminderTime)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

// DeleteHabit handles the deletion of a habit and its completion history
func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.habitService.DeleteHabit(userID, habitID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted successfully"})
}

// CompleteHabit records a completion and advances the streak
func (h *HabitHandler) CompleteHabit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	habitID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	habit, err := h.habitService.CompleteHabit(userID, habitID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}
