package models

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit for a free-text category.
// At most one active budget may exist per (user, category) pair; this is
// enforced by a pre-check at creation time rather than a unique constraint.
type Budget struct {
	Base
	UserID   string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Category string       `gorm:"not null" json:"category"`
	Amount   int64        `gorm:"type:bigint;not null" json:"amount"`
	Period   BudgetPeriod `gorm:"default:monthly" json:"period"`
	IsActive bool         `gorm:"default:true" json:"is_active"`
}
