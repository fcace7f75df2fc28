package provider

import (
	"context"
	"strings"
	"testing"

	"github.com/bleacherbot/bleacherbot/config"
)

func TestNewProvider_Unsupported(t *testing.T) {
	_, err := NewProvider(context.Background(), config.LLMConfig{Provider: "llama-at-home", APIKey: "k", Model: "m"})
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
	if !strings.Contains(err.Error(), "llama-at-home") {
		t.Fatalf("expected provider name in error, got %v", err)
	}
}
