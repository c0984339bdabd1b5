package convo

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"turibot/internal/model/convo"
	"turibot/internal/service/ai"
	"turibot/internal/service/session"
	"turibot/pkg/textutil"
)

// Generator is the slice of the AI service the orchestrator consumes.
type Generator interface {
	Generate(ctx context.Context, userText string, category convo.Category, includeLinks bool) (string, error)
	Classify(ctx context.Context, text string) (convo.Sentiment, error)
}

// Recorder receives the finished exchange, fire-and-forget.
type Recorder interface {
	Record(record convo.ExchangeRecord)
}

// Service orchestrates one message through the pipeline: category lookup,
// link detection, concurrent classification and generation, decoration,
// link normalization, best-effort persistence and chunking.
type Service struct {
	sessions *session.Store
	ai       Generator
	recorder Recorder
	timeout  time.Duration
	now      func() time.Time
}

// NewService wires the orchestrator. timeout bounds each message's pair of
// external calls; zero keeps a 30s default.
func NewService(sessions *session.Store, generator Generator, recorder Recorder, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		sessions: sessions,
		ai:       generator,
		recorder: recorder,
		timeout:  timeout,
		now:      time.Now,
	}
}

// SelectCategory stores the button token as the user's category and returns
// the new value. The transport renders the per-category prompt text.
func (s *Service) SelectCategory(userID int64, token string) convo.Category {
	return s.sessions.Select(userID, token)
}

// HandleMessage runs the full pipeline for one free-text message and returns
// the outbound chunks in send order. Any classification or generation
// failure aborts the message: no exchange is recorded, the error is the
// caller's cue to emit ApologyMessage, and session state is untouched.
func (s *Service) HandleMessage(ctx context.Context, userID int64, displayName, text string) ([]string, error) {
	sess := s.sessions.Get(userID)
	includeLinks := ai.WantsMapLink(text)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Classification and generation are independent; run them concurrently
	// and join before decorating.
	var (
		sentiment convo.Sentiment
		response  string
	)
	g, gctx := errgroup.WithContext(callCtx)
	g.Go(func() error {
		var err error
		sentiment, err = s.ai.Classify(gctx, text)
		return err
	})
	g.Go(func() error {
		var err error
		response, err = s.ai.Generate(gctx, text, sess.Category, includeLinks)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[convo] pipeline failed for user=%d: %v", userID, err)
		return nil, err
	}

	final := textutil.CollapseDuplicateLinks(Decorate(response, sentiment))

	// Persistence never blocks or fails the user-visible path.
	s.recorder.Record(convo.ExchangeRecord{
		ID:          uuid.NewString(),
		UserName:    displayName,
		Timestamp:   s.now().UTC(),
		UserMessage: text,
		BotResponse: final,
		Sentiment:   sentiment,
	})

	return textutil.Chunk(final, textutil.MaxMessageLength), nil
}
