package models

import (
	"time"

	"momentum/internal/uuid"

	"gorm.io/gorm"
)

// Base carries the columns shared by every table. IDs are UUIDv7 strings
// so primary keys sort by creation time.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate assigns an ID unless the caller supplied one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
