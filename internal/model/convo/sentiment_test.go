package convo

import "testing"

func TestParseSentimentCanonicalLabels(t *testing.T) {
	if got := ParseSentiment("positivo"); got != SentimentPositive {
		t.Fatalf("expected positive, got %s", got)
	}
	if got := ParseSentiment("negativo"); got != SentimentNegative {
		t.Fatalf("expected negative, got %s", got)
	}
	if got := ParseSentiment("neutral"); got != SentimentNeutral {
		t.Fatalf("expected neutral, got %s", got)
	}
}

func TestParseSentimentNormalizesNoise(t *testing.T) {
	if got := ParseSentiment("  Negativo.\n"); got != SentimentNegative {
		t.Fatalf("expected negative for padded reply, got %s", got)
	}
	if got := ParseSentiment("muy positivo!"); got != SentimentPositive {
		t.Fatalf("expected positive for noisy reply, got %s", got)
	}
	if got := ParseSentiment("El sentimiento es POSITIVO"); got != SentimentPositive {
		t.Fatalf("expected positive regardless of case, got %s", got)
	}
}

func TestParseSentimentNegativeWinsOverPositive(t *testing.T) {
	if got := ParseSentiment("positivo pero con un toque negativo"); got != SentimentNegative {
		t.Fatalf("expected negative to win, got %s", got)
	}
}

func TestParseSentimentUnparseableIsNeutral(t *testing.T) {
	if got := ParseSentiment("no tengo idea"); got != SentimentNeutral {
		t.Fatalf("expected neutral fallback, got %s", got)
	}
	if got := ParseSentiment(""); got != SentimentNeutral {
		t.Fatalf("expected neutral for empty reply, got %s", got)
	}
}
