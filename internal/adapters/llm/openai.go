package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Varun9213/nextflow-chat-bot/internal/domain"
)

// completionTemperature keeps answers close to the docs.
const completionTemperature = 0.05

// OpenAIClient implements domain.CompletionClient against the OpenAI
// chat-completions API.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIClient builds the live client. A missing API key is a
// configuration error: callers treat it as fatal at startup, never
// per-request.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set in live mode")
	}
	if model == "" {
		model = "gpt-4.1-mini"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}, nil
}

// Complete forwards the assembled messages upstream and returns the first
// choice's content. Every failure mode, timeout included, comes back as a
// *domain.CompletionError.
func (c *OpenAIClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toOpenAIMessages(req.Messages),
		Temperature: completionTemperature,
	})
	if err != nil {
		return "", &domain.CompletionError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &domain.CompletionError{Err: fmt.Errorf("response contained no choices")}
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(turns []domain.Turn) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		role := openai.ChatMessageRoleUser
		switch t.Role {
		case domain.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		case domain.RoleSystem:
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: t.Content,
		})
	}
	return out
}
