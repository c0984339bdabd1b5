package convo

import "time"

// ExchangeRecord persists a single question/answer turn for audit. Records
// are write-once; the orchestrator hands them to the history recorder and
// keeps no reference afterwards.
type ExchangeRecord struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	Timestamp   time.Time `json:"timestamp"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Sentiment   Sentiment `json:"sentiment"`
}
