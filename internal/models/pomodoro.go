package models

import "time"

// PomodoroType represents the kind of pomodoro session
type PomodoroType string

const (
	PomodoroTypeWork       PomodoroType = "work"
	PomodoroTypeShortBreak PomodoroType = "short_break"
	PomodoroTypeLongBreak  PomodoroType = "long_break"
)

// PomodoroSession represents a completed pomodoro timer session.
// Duration is in seconds; Tasks holds the labels of tasks worked on,
// serialized as a JSON array.
type PomodoroSession struct {
	Base
	UserID      string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        PomodoroType `gorm:"not null" json:"type"`
	Duration    int          `gorm:"not null" json:"duration"`
	CompletedAt time.Time    `gorm:"not null;index" json:"completed_at"`
	Tasks       string       `gorm:"type:text;default:'[]'" json:"-"`
}
