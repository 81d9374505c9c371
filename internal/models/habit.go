package models

import "time"

// HabitType represents whether a habit is something to build or break
type HabitType string

const (
	HabitTypePositive HabitType = "positive"
	HabitTypeNegative HabitType = "negative"
)

// HabitFrequency represents how often a habit should be performed
type HabitFrequency string

const (
	HabitFrequencyDaily   HabitFrequency = "daily"
	HabitFrequencyWeekly  HabitFrequency = "weekly"
	HabitFrequencyMonthly HabitFrequency = "monthly"
)

// Habit represents a tracked habit. Streak counts consecutive calendar days
// of completion and must stay derivable from the last two completion entries.
// Version guards the read-modify-write streak update against lost updates.
type Habit struct {
	Base
	UserID          string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `json:"description"`
	Type            HabitType      `gorm:"not null" json:"type"`
	Frequency       HabitFrequency `gorm:"default:daily" json:"frequency"`
	Goal            string         `json:"goal"`
	Streak          int            `gorm:"default:0" json:"streak"`
	Completed       bool           `gorm:"default:false" json:"completed"`
	ReminderEnabled bool           `gorm:"default:false" json:"reminder_enabled"`
	ReminderTime    string         `gorm:"default:'09:00'" json:"reminder_time"`
	Version         int64          `gorm:"default:0" json:"-"`

	Completions []HabitCompletion `gorm:"foreignKey:HabitID" json:"completions,omitempty"`
}

// HabitCompletion is one entry in a habit's append-only completion sequence.
// Entries are never removed or reordered.
type HabitCompletion struct {
	Base
	HabitID     string    `gorm:"type:uuid;not null;index" json:"habit_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
}
