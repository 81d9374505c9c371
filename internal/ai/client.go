// Package ai wraps the DeepSeek chat-completions API behind a narrow
// Generator capability so the habit-insights path can be tested without any
// network dependency.
package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	apperrors "momentum/internal/errors"
	"momentum/internal/logger"
)

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// generateAttempts bounds retries against the external AI service.
const generateAttempts = 2

// Client is a DeepSeek-backed Generator. DeepSeek exposes an
// OpenAI-compatible chat-completions API, so the go-openai client is pointed
// at its base URL.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a DeepSeek client for the given credentials.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Generate sends a single-user-message chat completion and returns the
// response text. Transport failures are retried once before surfacing as a
// dependency error.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	var lastErr error
	for attempt := 0; attempt < generateAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", apperrors.Wrap(apperrors.ErrAIUnavailable, ctx.Err())
			case <-time.After(500 * time.Millisecond):
			}
		}

		resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			MaxTokens:   maxTokens,
			Temperature: 0.7,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			logger.Get().Warnw("ai generate attempt failed", "attempt", attempt+1, "error", err.Error())
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("empty completion response")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", apperrors.Wrap(apperrors.ErrAIUnavailable, lastErr)
}
