// Package llm wraps langchaingo chat models for the concierge.
package llm

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/bedrock"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/travelpal/travelpal/internal/config"
	"github.com/travelpal/travelpal/internal/models"
)

// Generation parameters for every concierge turn. Single attempt, no retry.
const (
	temperature     = 0.7
	topP            = 0.95
	topK            = 40
	maxOutputTokens = 1000
)

// Model wraps a langchaingo chat model.
type Model struct {
	llm       llms.Model
	modelName string
}

// NewModel creates a chat model based on configuration.
func NewModel(ctx context.Context, cfg config.Config) (*Model, error) {
	var model llms.Model
	var err error

	switch cfg.LLMProvider {
	case config.ProviderGoogleAI:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("Gemini API key required")
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(cfg.LLMModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create googleai model: %w", err)
		}

	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OpenAI API key required")
		}
		model, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.LLMModel),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}

	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithModel(cfg.LLMModel),
			ollama.WithServerURL(cfg.OllamaHost),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	case config.ProviderBedrock:
		awsCfg, cfgErr := awsconfig.LoadDefaultConfig(ctx)
		if cfgErr != nil {
			return nil, fmt.Errorf("load aws config: %w", cfgErr)
		}
		client := bedrockruntime.NewFromConfig(awsCfg)
		model, err = bedrock.New(
			bedrock.WithClient(client),
			bedrock.WithModel(cfg.BedrockModelID),
		)
		if err != nil {
			return nil, fmt.Errorf("create bedrock model: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}

	return &Model{
		llm:       model,
		modelName: cfg.LLMModel,
	}, nil
}

// Chat sends an assembled turn sequence and returns the reply text. The
// caller is responsible for ordering: the first turn must carry the user
// role, as chat models reject histories opening on the assistant role.
func (m *Model) Chat(ctx context.Context, turns []models.Turn) (string, error) {
	messages := make([]llms.MessageContent, 0, len(turns))
	for _, t := range turns {
		role := llms.ChatMessageTypeHuman
		if t.Role == models.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, t.Content))
	}

	response, err := m.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(temperature),
		llms.WithTopP(topP),
		llms.WithTopK(topK),
		llms.WithMaxTokens(maxOutputTokens),
	)
	if err != nil {
		return "", ClassifyError(err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat: %w", ErrUnavailable)
	}

	return response.Choices[0].Content, nil
}

// Model returns the chat model name.
func (m *Model) Model() string {
	return m.modelName
}
