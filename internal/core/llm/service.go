package llm

import (
	"context"
	"log"
)

// Service wraps an LLM provider for dependency injection
type Service struct {
	provider LLMProvider
}

// NewService creates an LLM service from provider settings
func NewService(providerType, openAIKey, geminiKey, model string) (*Service, error) {
	cfg := DefaultProviderConfig(providerType, openAIKey, geminiKey, model)

	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	log.Printf("🤖 Using LLM provider: %s (model: %s)", provider.GetProviderName(), cfg.Model)
	return &Service{provider: provider}, nil
}

// NewServiceWithProvider creates a service with a custom provider (for testing)
func NewServiceWithProvider(provider LLMProvider) *Service {
	return &Service{provider: provider}
}

// GenerateResponse generates an AI response
func (s *Service) GenerateResponse(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	return s.provider.GenerateResponse(ctx, systemPrompt, userMessage)
}

// GetProviderName returns the current provider name
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
