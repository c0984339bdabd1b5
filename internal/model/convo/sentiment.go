package convo

import "strings"

// Sentiment is the label derived from a user message. It selects the
// decoration preamble for the current response and is persisted with the
// exchange; it is never stored as session state.
type Sentiment string

const (
	SentimentPositive Sentiment = "positivo"
	SentimentNegative Sentiment = "negativo"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment normalizes a raw classifier reply to a canonical label.
// Matching is by substring containment with the negative label checked
// first, so a noisy reply like "muy positivo!" still resolves. Anything
// that matches neither label is neutral.
func ParseSentiment(raw string) Sentiment {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(normalized, string(SentimentNegative)):
		return SentimentNegative
	case strings.Contains(normalized, string(SentimentPositive)):
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}
