package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Name             string     `json:"name"`
	Mobile           string     `json:"mobile"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	SavingsGoals []SavingsGoal `gorm:"foreignKey:UserID" json:"savings_goals,omitempty"`
	Tasks        []Task        `gorm:"foreignKey:UserID" json:"tasks,omitempty"`
	Notes        []Note        `gorm:"foreignKey:UserID" json:"notes,omitempty"`
	Habits       []Habit       `gorm:"foreignKey:UserID" json:"habits,omitempty"`
}
