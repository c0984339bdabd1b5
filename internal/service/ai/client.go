package ai

import "context"

// Client abstracts the external generative-text service: a prompt in, a
// completion out. Implementations do not retry; failures propagate to the
// orchestrator, which aborts the current message.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
