package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderFactory(t *testing.T) {
	p, err := NewProvider(&ProviderConfig{Type: ProviderOpenAI, OpenAIKey: "sk-test"})
	require.NoError(t, err)
	assert.Equal(t, "OpenAI", p.GetProviderName())

	p, err = NewProvider(&ProviderConfig{Type: ProviderGemini, GeminiKey: "g-test"})
	require.NoError(t, err)
	assert.Equal(t, "Google Gemini", p.GetProviderName())

	_, err = NewProvider(&ProviderConfig{Type: ProviderOpenAI})
	assert.Error(t, err, "missing OpenAI key")

	_, err = NewProvider(&ProviderConfig{Type: "mistral"})
	assert.Error(t, err, "unknown provider type")
}

func TestProviderConstructorDefaults(t *testing.T) {
	op := NewOpenAIProvider(&ProviderConfig{OpenAIKey: "sk-test"})
	assert.Equal(t, "gpt-4o-mini", op.model)
	assert.Equal(t, float32(0.7), op.temperature)
	assert.Equal(t, 512, op.maxTokens)

	gp := NewGeminiProvider(&ProviderConfig{GeminiKey: "g-test", Model: "gemini-2.0-pro", MaxTokens: 64})
	assert.Equal(t, "gemini-2.0-pro", gp.model)
	assert.Equal(t, 64, gp.maxTokens)
	assert.Equal(t, 2048, NewGeminiProvider(&ProviderConfig{GeminiKey: "g-test"}).maxTokens)
}

func TestDefaultProviderConfigFillsModel(t *testing.T) {
	cfg := DefaultProviderConfig("", "sk-test", "", "")
	assert.Equal(t, ProviderOpenAI, cfg.Type)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)

	cfg = DefaultProviderConfig("gemini", "", "g-test", "")
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)

	cfg = DefaultProviderConfig("openai", "sk-test", "", "gpt-4o")
	assert.Equal(t, "gpt-4o", cfg.Model)
}
