package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RecurringFrequency represents how often a recurring transaction repeats
type RecurringFrequency string

const (
	RecurringNone    RecurringFrequency = "none"
	RecurringDaily   RecurringFrequency = "daily"
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
	RecurringYearly  RecurringFrequency = "yearly"
)

// Transaction represents a financial transaction in the system.
// Amount is stored in cents; Category is free-text user input and is
// treated as an opaque grouping key throughout.
type Transaction struct {
	Base
	UserID             string             `gorm:"type:uuid;not null;index" json:"user_id"`
	Type               TransactionType    `gorm:"not null" json:"type"`
	Amount             int64              `gorm:"type:bigint;not null" json:"amount"`
	Category           string             `gorm:"not null" json:"category"`
	Description        string             `json:"description"`
	Source             string             `json:"source"`
	Date               time.Time          `gorm:"not null;index" json:"date"`
	IsRecurring        bool               `gorm:"default:false" json:"is_recurring"`
	RecurringFrequency RecurringFrequency `gorm:"default:none" json:"recurring_frequency"`
}
