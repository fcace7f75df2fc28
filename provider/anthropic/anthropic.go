package anthropic_provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bleacherbot/bleacherbot/config"
)

// client implements the Provider interface using Anthropic's messages
// API.
type client struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// New creates a new Anthropic-backed provider.
func New(cfg config.LLMConfig) (*client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("anthropic: api key is not set")
	}
	c := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &client{client: &c, model: cfg.Model, maxTokens: maxTokens}, nil
}

func (c *client) Model() string { return c.model }

func (c *client) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userContent)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return strings.TrimSpace(resp.Content[0].Text), nil
}
