package models

import "time"

// Task represents a to-do item
type Task struct {
	Base
	UserID      string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
