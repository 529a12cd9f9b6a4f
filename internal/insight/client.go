// Package insight builds LLM prompts from the live analytics and handles the
// raw text that comes back. The contract with the model is strictly "send a
// prompt, receive text": replies are never assumed to be well-formed.
package insight

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL  = "https://api.groq.com/openai/v1"
	groqModel    = "llama-3.3-70b-versatile"
	temperature  = 0.4
	summaryLimit = 512
	matchLimit   = 900
)

// Completer sends one chat exchange and returns the raw reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// GroqClient talks to the Groq OpenAI-compatible chat endpoint.
type GroqClient struct {
	client *openai.Client
}

// NewGroqClient builds a client for the given API key.
func NewGroqClient(apiKey string) *GroqClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	return &GroqClient{client: openai.NewClientWithConfig(cfg)}
}

// Complete sends a system+user message pair and returns the reply text.
func (g *GroqClient) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       groqModel,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
