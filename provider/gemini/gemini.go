package gemini_provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bleacherbot/bleacherbot/config"
)

// client implements the Provider interface using Google AI Studio via
// the genai SDK. This is the default provider.
type client struct {
	client      *genai.Client
	model       string
	temperature float64
}

// New creates a new Gemini/Gemma provider.
func New(ctx context.Context, cfg config.LLMConfig) (*client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: api key is not set")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &client{client: gc, model: cfg.Model, temperature: cfg.Temperature}, nil
}

func (c *client) Model() string { return c.model }

// Generate sends the prompt to the model and returns the generated text.
// Gemma models on AI Studio do not support a separate system role, so
// the role instructions are prepended to the user turn.
func (c *client) Generate(ctx context.Context, systemPrompt, userContent string) (string, error) {
	full := systemPrompt + "\n\n---\n\nHere is the raw data to work with:\n\n" + userContent

	temp := float32(c.temperature)
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(full), &genai.GenerateContentConfig{
		Temperature: &temp,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
