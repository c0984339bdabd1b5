package ai

import (
	"context"
	"fmt"
	"strings"

	"turibot/internal/model/convo"
)

// Service adapts the raw completion client into the two operations the
// conversation pipeline needs: tourist-guide generation and sentiment
// classification. Neither retries; errors belong to the caller.
type Service struct {
	client Client
}

// NewService wraps a completion client.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Generate composes the category-aware prompt for the user text and returns
// the trimmed completion.
func (s *Service) Generate(ctx context.Context, userText string, category convo.Category, includeLinks bool) (string, error) {
	raw, err := s.client.Complete(ctx, BuildPrompt(userText, category, includeLinks))
	if err != nil {
		return "", fmt.Errorf("generate response: %w", err)
	}
	return strings.TrimSpace(raw), nil
}

// Classify asks the model for a single-word sentiment verdict on the user
// text and normalizes whatever comes back to a canonical label.
func (s *Service) Classify(ctx context.Context, text string) (convo.Sentiment, error) {
	raw, err := s.client.Complete(ctx, classificationInstruction+text)
	if err != nil {
		return "", fmt.Errorf("classify sentiment: %w", err)
	}
	return convo.ParseSentiment(raw), nil
}
