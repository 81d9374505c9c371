package models

import "time"

// SavingsGoal represents a savings target. Plain CRUD record, never touched
// by the analytics engine.
type SavingsGoal struct {
	Base
	UserID       string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string     `gorm:"not null" json:"name"`
	TargetAmount int64      `gorm:"type:bigint;not null" json:"target_amount"`
	TargetDate   *time.Time `json:"target_date,omitempty"`
}
