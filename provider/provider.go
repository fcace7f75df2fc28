package provider

import (
	"context"
	"fmt"

	"github.com/bleacherbot/bleacherbot/config"
	anthropic_provider "github.com/bleacherbot/bleacherbot/provider/anthropic"
	gemini_provider "github.com/bleacherbot/bleacherbot/provider/gemini"
	openai_provider "github.com/bleacherbot/bleacherbot/provider/openai"
)

// Client represents different LLM providers
type Client string

const (
	Gemini    Client = "gemini"
	OpenAI    Client = "openai"
	Anthropic Client = "anthropic"
)

// Provider is the interface that all LLM implementations must satisfy.
// Generate sends role instructions plus user content to the model and
// returns the raw response text.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userContent string) (string, error)
	Model() string
}

// NewProvider creates a new LLM client based on the provided
// configuration. A missing credential is reported here, before any
// network call is attempted.
func NewProvider(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	switch Client(cfg.Provider) {
	case Gemini:
		return gemini_provider.New(ctx, cfg)
	case OpenAI:
		return openai_provider.New(cfg)
	case Anthropic:
		return anthropic_provider.New(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
