package models

// Note represents a free-form note
type Note struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
}
