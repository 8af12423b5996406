package llm

import (
	"context"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
)

// AugmentPolicy gates when a chatbot turn may be enriched by the LLM.
// The rule-based reply is always computed first and always stands when
// any of these checks fail — augmentation is never load-bearing.
type AugmentPolicy struct {
	Enabled               bool
	FallbackThreshold     int
	AllowDuringCollection bool
	AllowGreeting         bool
	Timeout               time.Duration
}

func DefaultAugmentPolicy(enabled bool, fallbackThreshold int) AugmentPolicy {
	if fallbackThreshold <= 0 {
		fallbackThreshold = 3
	}
	return AugmentPolicy{
		Enabled:           enabled,
		FallbackThreshold: fallbackThreshold,
		Timeout:           8 * time.Second,
	}
}

// Augmenter wraps a provider behind the gate policy.
type Augmenter struct {
	provider LLMProvider
	policy   AugmentPolicy
}

func NewAugmenter(provider LLMProvider, policy AugmentPolicy) *Augmenter {
	return &Augmenter{provider: provider, policy: policy}
}

func (a *Augmenter) Policy() AugmentPolicy { return a.policy }

// ShouldAugment applies the fixed gate: global enable, per-session
// fallback budget, message heuristics, and conversation position.
func (a *Augmenter) ShouldAugment(message string, st *chatbot.ConversationState, sessionFallbacks int) bool {
	if !a.policy.Enabled || a.provider == nil {
		return false
	}
	if sessionFallbacks >= a.policy.FallbackThreshold {
		return false
	}
	if st != nil && !a.policy.AllowDuringCollection {
		switch st.Expecting {
		case chatbot.ExpectName, chatbot.ExpectEmail, chatbot.ExpectCompany:
			return false
		}
	}
	if !a.policy.AllowGreeting && isBareGreeting(message) {
		return false
	}
	return looksComplex(message)
}

// Augment makes a single attempt against the provider. On any failure
// or empty reply it returns ok=false; the caller keeps the rule-based
// reply and bumps its fallback counter. No retries.
func (a *Augmenter) Augment(ctx context.Context, message string, st *chatbot.ConversationState, recent []chatbot.Message) (string, bool) {
	if a.provider == nil {
		return "", false
	}

	timeout := a.policy.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	systemPrompt := BuildAugmentPrompt(st, recent)
	reply, err := a.provider.GenerateResponse(ctx, systemPrompt, message)
	if err != nil || strings.TrimSpace(reply) == "" {
		return "", false
	}
	return strings.TrimSpace(reply), true
}

var greetingWords = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

func isBareGreeting(message string) bool {
	trimmed := strings.ToLower(strings.Trim(strings.TrimSpace(message), "!., "))
	for _, g := range greetingWords {
		if trimmed == g {
			return true
		}
	}
	return false
}

var comparisonMarkers = []string{"compare", "comparison", " vs ", "versus", "difference between", "better than", "instead of"}
var urgencyMarkers = []string{"urgent", "asap", "immediately", "right away", "today if possible"}

// looksComplex is the heuristic for "worth an LLM round-trip":
// long questions, comparisons, or urgent-sounding messages.
func looksComplex(message string) bool {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "?") && len(lower) > 80 {
		return true
	}
	for _, m := range comparisonMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	for _, m := range urgencyMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
