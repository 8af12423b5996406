package llm

import (
	"context"
	"fmt"
)

// LLMProvider interface for multiple AI providers
type LLMProvider interface {
	GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error)
	GetProviderName() string
}

// ProviderType for the factory
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)

// ProviderConfig to create a provider
type ProviderConfig struct {
	Type ProviderType

	OpenAIKey string
	GeminiKey string

	Model       string
	Temperature float32
	MaxTokens   int
}

// NewProvider factory to create an LLM provider
func NewProvider(cfg *ProviderConfig) (LLMProvider, error) {
	switch cfg.Type {
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
		return NewOpenAIProvider(cfg), nil

	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required")
		}
		return NewGeminiProvider(cfg), nil

	default:
		return nil, fmt.Errorf("unknown LLM provider type: %s", cfg.Type)
	}
}

// DefaultProviderConfig fills provider-specific model defaults
func DefaultProviderConfig(providerType, openAIKey, geminiKey, model string) *ProviderConfig {
	if providerType == "" {
		providerType = string(ProviderOpenAI)
	}

	cfg := &ProviderConfig{
		Type:        ProviderType(providerType),
		OpenAIKey:   openAIKey,
		GeminiKey:   geminiKey,
		Model:       model,
		Temperature: 0.7,
		MaxTokens:   512,
	}

	if cfg.Model == "" {
		switch cfg.Type {
		case ProviderOpenAI:
			cfg.Model = "gpt-4o-mini"
		case ProviderGemini:
			cfg.Model = "gemini-2.5-flash"
		}
	}

	return cfg
}
