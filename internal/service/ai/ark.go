package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"turibot/internal/config"
)

// ArkClient runs completions through a compiled eino chain backed by an Ark
// chat model.
type ArkClient struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewArkClient builds the chat model from configuration and compiles the
// single-turn completion chain.
func NewArkClient(ctx context.Context, cfg config.AIConfig) (*ArkClient, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile completion chain: %w", err)
	}

	return &ArkClient{chain: runnable}, nil
}

// Complete sends the prompt through the chain and returns the model reply.
func (c *ArkClient) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.chain.Invoke(ctx, map[string]any{"query": prompt})
	if err != nil {
		return "", fmt.Errorf("ark completion: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", errors.New("ark completion: empty response")
	}
	return msg.Content, nil
}
