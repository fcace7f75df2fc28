package openai_provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/bleacherbot/bleacherbot/config"
)

// client implements the Provider interface using OpenAI's chat
// completions API.
type client struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// New creates a new OpenAI-backed provider.
func New(cfg config.LLMConfig) (*client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai: api key is not set")
	}
	c := openai.NewClient(option.WithAPIKey(cfg.APIKey))
	return &client{
		client:      &c,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (c *client) Model() string { return c.model }

// Generate sends the prompt pair as system+user chat messages and
// returns the first choice's text.
func (c *client) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userContent),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
