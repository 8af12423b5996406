package chatbot

import (
	"regexp"
	"strings"
)

// Classification is the result of one turn through the classifier.
type Classification struct {
	Intent         Intent
	Services       []string
	PainPoints     []string
	HasContactInfo bool
	Qualification  Qualification
}

// Classifier is a deterministic keyword/regex intent classifier.
// No NLP, no scoring — an ordered priority cascade over keyword groups.
type Classifier struct {
	cfg *Config
}

func NewClassifier(cfg *Config) *Classifier {
	return &Classifier{cfg: cfg}
}

// Classify labels a single user message. It never fails: empty or
// unmatchable input falls through to the general intent.
func (c *Classifier) Classify(message string, st *ConversationState) Classification {
	normalized := c.normalize(message)

	result := Classification{Intent: IntentGeneral}

	// Independent category scans (not mutually exclusive with intent)
	for category, keywords := range c.cfg.ServiceKeywords {
		if matchesAny(normalized, keywords) {
			result.Services = addToSet(result.Services, category)
		}
	}
	for category, keywords := range c.cfg.PainPointKeywords {
		if matchesAny(normalized, keywords) {
			result.PainPoints = addToSet(result.PainPoints, category)
		}
	}

	result.HasContactInfo = emailProbe.MatchString(message) || phoneProbe.MatchString(message)

	// Priority cascade: first group whose keyword set matches wins
	matched := false
	for _, group := range c.cfg.IntentGroups {
		if matchesAny(normalized, group.Keywords) {
			result.Intent = group.Intent
			matched = true
			break
		}
	}

	if !matched {
		switch {
		case result.HasContactInfo:
			result.Intent = IntentContactInfo
		case companyProbe.MatchString(message):
			result.Intent = IntentBusinessInfo
		}
	}

	// Qualification counts categories from the whole conversation so far,
	// plus whatever this turn added.
	combined := len(addToSet(append([]string(nil), stServices(st)...), result.Services...)) +
		len(addToSet(append([]string(nil), stPainPoints(st)...), result.PainPoints...))
	result.Qualification = QualifyCount(combined)

	return result
}

func (c *Classifier) normalize(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, sub := range c.cfg.Substitutions {
		normalized = strings.ReplaceAll(normalized, sub.From, sub.To)
	}
	return normalized
}

// matchesAny reports whether any keyword occurs in the message.
// Single-word keywords match on word boundaries so "hi" doesn't fire
// inside "this"; phrases match as plain substrings.
func matchesAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "?" {
			if strings.Contains(normalized, "?") {
				return true
			}
			continue
		}
		if strings.ContainsAny(kw, " '") {
			if strings.Contains(normalized, kw) {
				return true
			}
			continue
		}
		if containsWord(normalized, kw) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func stServices(st *ConversationState) []string {
	if st == nil {
		return nil
	}
	return st.ServicesDiscussed
}

func stPainPoints(st *ConversationState) []string {
	if st == nil {
		return nil
	}
	return st.PainPoints
}

// Presence probes only — full extraction lives in the extractor.
var (
	emailProbe   = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneProbe   = regexp.MustCompile(`(\(\d{3}\)\s*|\b\d{3}[-.\s])\d{3}[-.\s]?\d{4}\b|\+1\s?\d{10}\b`)
	companyProbe = regexp.MustCompile(`(?i)\b(?:company is|work (?:at|for)|we are called)\b|\b(?:Inc|LLC|Corp|Ltd)\.?\b`)
)
