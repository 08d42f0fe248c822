package llm

import (
	"context"
	"testing"

	"github.com/travelpal/travelpal/internal/config"
)

func TestNewModelOllama(t *testing.T) {
	cfg := config.Config{
		LLMProvider: config.ProviderOllama,
		LLMModel:    "llama3",
		OllamaHost:  "http://localhost:11434",
	}

	m, err := NewModel(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	if got := m.Model(); got != "llama3" {
		t.Errorf("Model() = %q, want %q", got, "llama3")
	}
}

func TestNewModelMissingKey(t *testing.T) {
	tests := []struct {
		name     string
		provider string
	}{
		{"googleai without key", config.ProviderGoogleAI},
		{"openai without key", config.ProviderOpenAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{LLMProvider: tt.provider, LLMModel: "any"}
			if _, err := NewModel(context.Background(), cfg); err == nil {
				t.Error("NewModel() must fail without an API key")
			}
		})
	}
}

func TestNewModelUnsupportedProvider(t *testing.T) {
	cfg := config.Config{LLMProvider: "palm"}
	if _, err := NewModel(context.Background(), cfg); err == nil {
		t.Error("NewModel() must reject unknown providers")
	}
}
