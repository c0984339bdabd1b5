package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"turibot/internal/config"
)

// OpenAIClient is the alternate provider, selected with AI_PROVIDER=openai.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed completion client.
func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(cfg.OpenAIKey),
		model:  cfg.OpenAIModel,
	}
}

// Complete sends the prompt as a single user turn and returns the reply.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
