package models

// AIInteractionType classifies an AI call
type AIInteractionType string

const (
	AIInteractionRecommendation AIInteractionType = "recommendation"
	AIInteractionAnalysis       AIInteractionType = "analysis"
	AIInteractionMotivation     AIInteractionType = "motivation"
	AIInteractionPattern        AIInteractionType = "pattern"
)

// AIInteraction is an append-only log entry for a call to the AI service.
// Metadata holds request context serialized as JSON.
type AIInteraction struct {
	Base
	UserID   string            `gorm:"type:uuid;not null;index" json:"user_id"`
	Type     AIInteractionType `gorm:"not null" json:"type"`
	Prompt   string            `gorm:"type:text;not null" json:"prompt"`
	Response string            `gorm:"type:text;not null" json:"response"`
	Metadata string            `gorm:"type:text;default:'{}'" json:"metadata"`
}
