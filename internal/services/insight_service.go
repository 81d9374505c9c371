package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"momentum/internal/ai"
	apperrors "momentum/internal/errors"
	"momentum/internal/logger"
	"momentum/internal/models"
)

// HabitRecommendation is one AI-suggested habit.
type HabitRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
}

// jsonArrayRegex extracts a JSON array embedded in surrounding prose, since
// the model sometimes wraps its answer in commentary.
var jsonArrayRegex = regexp.MustCompile(`(?s)\[.*\]`)

// fallbackRecommendations is returned when the AI response cannot be parsed
// or the service is unreachable.
var fallbackRecommendations = []HabitRecommendation{
	{
		Name:        "Morning Meditation",
		Description: "Start your day with 5 minutes of meditation",
		Type:        "positive",
		Reason:      "Helps with focus and reduces stress, supporting your goals",
	},
}

const (
	fallbackAnalysis   = "Habit analysis is temporarily unavailable. Keep logging completions; insights will be back shortly."
	fallbackMotivation = "Every completion counts. Keep showing up today and your streaks will take care of themselves."
)

// insightService enriches habit data through the AI collaborator and records
// each interaction. AI failures degrade to fixed fallbacks and never disturb
// habit or streak state.
type insightService struct {
	db        *gorm.DB
	generator ai.Generator
}

// NewInsightService creates a new InsightServicer.
func NewInsightService(db *gorm.DB, generator ai.Generator) InsightServicer {
	return &insightService{db: db, generator: generator}
}

// Recommendations suggests new habits for the user's stated goals,
// personalized with their current habit names.
func (s *insightService) Recommendations(ctx context.Context, userID, goals string) ([]HabitRecommendation, error) {
	if strings.TrimSpace(goals) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goals parameter is required")
	}

	habits, err := s.userHabits(userID)
	if err != nil {
		return nil, err
	}
	names := habitNames(habits)
	current := "none"
	if len(names) > 0 {
		current = strings.Join(names, ", ")
	}

	prompt := fmt.Sprintf(`As a habit-building expert, suggest 3-5 personalized habits for someone with these goals: %q.
They currently have these habits: %s.

Provide the response as a JSON array with this structure for each habit:
{"name": "Habit name", "description": "Brief explanation", "type": "positive", "reason": "Why this habit would help achieve their goals"}`, goals, current)

	response, err := s.generator.Generate(ctx, prompt, 500)
	if err != nil {
		logger.Get().Warnw("ai recommendations unavailable, using fallback", "error", err.Error())
		return fallbackRecommendations, nil
	}

	recommendations := parseRecommendations(response)

	s.logInteraction(userID, models.AIInteractionRecommendation,
		fmt.Sprintf("Habit recommendations for goals: %s", goals),
		response,
		map[string]interface{}{"goals": goals, "currentHabits": names})

	return recommendations, nil
}

// Analysis summarizes the user's habit patterns. Requires at least one habit.
func (s *insightService) Analysis(ctx context.Context, userID string) (string, error) {
	habits, err := s.userHabits(userID)
	if err != nil {
		return "", err
	}
	if len(habits) == 0 {
		return "", apperrors.ErrNoHabitsToAnalyze
	}

	type completionSummary struct {
		Name            string `json:"name"`
		Streak          int    `json:"streak"`
		CompletionCount int    `json:"completionCount"`
		LastCompletion  string `json:"lastCompletion,omitempty"`
	}

	summaries := make([]completionSummary, 0, len(habits))
	var described []string
	for _, h := range habits {
		cs := completionSummary{
			Name:            h.Name,
			Streak:          h.Streak,
			CompletionCount: len(h.Completions),
		}
		if last := lastCompletion(h.Completions); last != nil {
			cs.LastCompletion = last.Format("2006-01-02")
		}
		summaries = append(summaries, cs)
		described = append(described, fmt.Sprintf("%s (%s)", h.Name, h.Type))
	}
	summaryJSON, _ := json.Marshal(summaries)

	prompt := fmt.Sprintf(`Analyze these habit patterns and provide insights:
Habits: %s
Completion history: %s

Provide specific, actionable insights about patterns, potential obstacles, and suggestions for improvement.
Keep the response under 200 words.`, strings.Join(described, ", "), summaryJSON)

	analysis, err := s.generator.Generate(ctx, prompt, 300)
	if err != nil {
		logger.Get().Warnw("ai analysis unavailable, using fallback", "error", err.Error())
		return fallbackAnalysis, nil
	}

	s.logInteraction(userID, models.AIInteractionAnalysis,
		"Habit pattern analysis", analysis,
		map[string]interface{}{"habitsCount": len(habits)})

	return analysis, nil
}

// Motivation produces a short motivational message from the user's progress.
func (s *insightService) Motivation(ctx context.Context, userID string) (string, error) {
	habits, err := s.userHabits(userID)
	if err != nil {
		return "", err
	}

	completedCount := 0
	bestStreak := 0
	for _, h := range habits {
		completedCount += len(h.Completions)
		if h.Streak > bestStreak {
			bestStreak = h.Streak
		}
	}

	progress := fmt.Sprintf("You've completed %d habit sessions with a current streak of %d days.", completedCount, bestStreak)
	goals := strings.Join(habitNames(habits), ", ")

	prompt := fmt.Sprintf(`Create a motivational message for someone working on habit formation.
Their progress: %s
Their goals: %s

Make it encouraging, specific to their situation, and keep it under 100 words.`, progress, goals)

	motivation, err := s.generator.Generate(ctx, prompt, 150)
	if err != nil {
		logger.Get().Warnw("ai motivation unavailable, using fallback", "error", err.Error())
		return fallbackMotivation, nil
	}

	s.logInteraction(userID, models.AIInteractionMotivation,
		"Generate motivational message", motivation,
		map[string]interface{}{"completedCount": completedCount, "currentStreak": bestStreak})

	return motivation, nil
}

// userHabits loads all habits with their completion history.
func (s *insightService) userHabits(userID string) ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.db.
		Preload("Completions", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_at ASC")
		}).
		Where("user_id = ?", userID).
		Find(&habits).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return habits, nil
}

func habitNames(habits []models.Habit) []string {
	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
	}
	return names
}

// parseRecommendations extracts the recommendation array from a model
// response, falling back to the fixed default set when it cannot be parsed.
func parseRecommendations(response string) []HabitRecommendation {
	candidate := response
	if match := jsonArrayRegex.FindString(response); match != "" {
		candidate = match
	}

	var recommendations []HabitRecommendation
	if err := json.Unmarshal([]byte(candidate), &recommendations); err != nil || len(recommendations) == 0 {
		logger.Get().Warnw("failed to parse ai recommendations, using fallback", "response_length", len(response))
		return fallbackRecommendations
	}
	return recommendations
}

// logInteraction records an AI call. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *insightService) logInteraction(userID string, interactionType models.AIInteractionType, prompt, response string, metadata map[string]interface{}) {
	metadataJSON := "{}"
	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(data)
		} else {
			logger.Get().Errorw("failed to marshal ai interaction metadata", "error", err, "type", interactionType)
		}
	}

	entry := &models.AIInteraction{
		UserID:   userID,
		Type:     interactionType,
		Prompt:   prompt,
		Response: response,
		Metadata: metadataJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to record ai interaction",
			"error", err,
			"user_id", userID,
			"type", interactionType,
		)
	}
}
