package chatbot

import (
	"regexp"
	"strings"
)

// Extractor pulls contact fields out of free text. Extraction is
// best-effort: no match on any field yields an empty partial, never
// an error. Fields already set on the current info are left alone.
type Extractor struct {
	cfg *Config
}

func NewExtractor(cfg *Config) *Extractor {
	return &Extractor{cfg: cfg}
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// North-American phone variants, first match wins
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),
		regexp.MustCompile(`\+1\s?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bmy name is\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Za-z][A-Za-z'\-]*){1,3})`),
		regexp.MustCompile(`\b(?:I'm|I am|i'm|i am|This is|this is)\s+([A-Z][a-z'\-]+(?:\s+[A-Z][a-z'\-]+){1,3})`),
		regexp.MustCompile(`^([A-Z][a-z'\-]+(?:\s+[A-Z][a-z'\-]+){1,3})\b`),
		regexp.MustCompile(`[.,!?]\s+([A-Z][a-z'\-]+(?:\s+[A-Z][a-z'\-]+){1,3})\b`),
	}

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:company is|company's called|we are called)\s+([A-Za-z0-9][A-Za-z0-9&'\- ]{1,40})`),
		regexp.MustCompile(`(?i)\bwork (?:at|for)\s+([A-Za-z0-9][A-Za-z0-9&'\- ]{1,40})`),
		regexp.MustCompile(`\b([A-Z][A-Za-z0-9&'\-]*(?:\s+[A-Z][A-Za-z0-9&'\-]*){0,3}\s+(?:Inc|LLC|Corp|Ltd|Co)\.?)(?:\s|$|[.,!?])`),
		regexp.MustCompile(`^([A-Z][A-Za-z0-9&'\-]*(?:\s+[A-Z][A-Za-z0-9&'\-]*){0,3})$`),
	}
)

// Extract returns a partial ContactInfo containing only fields not
// already present in current (first-write-wins).
func (e *Extractor) Extract(message string, current ContactInfo) ContactInfo {
	var out ContactInfo

	if current.Email == "" {
		out.Email = e.ExtractEmail(message)
	}
	if current.Phone == "" {
		out.Phone = e.ExtractPhone(message)
	}
	if current.Name == "" {
		out.Name = e.ExtractName(message)
	}
	if current.CompanyName == "" {
		out.CompanyName = e.ExtractCompany(message)
	}

	return out
}

func (e *Extractor) ExtractEmail(message string) string {
	return emailPattern.FindString(message)
}

func (e *Extractor) ExtractPhone(message string) string {
	for _, p := range phonePatterns {
		if m := p.FindString(message); m != "" {
			return m
		}
	}
	return ""
}

// ExtractName tries the ordered name patterns and accepts the first
// candidate that passes word-count, length, and stoplist checks.
func (e *Extractor) ExtractName(message string) string {
	for _, p := range namePatterns {
		m := p.FindStringSubmatch(message)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if e.acceptName(candidate) {
			return candidate
		}
	}
	return ""
}

func (e *Extractor) acceptName(candidate string) bool {
	if len(candidate) > 50 {
		return false
	}
	words := strings.Fields(candidate)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if inList(strings.ToLower(w), e.cfg.NameStoplist) {
			return false
		}
	}
	return true
}

func (e *Extractor) ExtractCompany(message string) string {
	for _, p := range companyPatterns {
		m := p.FindStringSubmatch(message)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(strings.TrimRight(m[1], ".,!? "))
		if e.acceptCompany(candidate) {
			return candidate
		}
	}
	return ""
}

func (e *Extractor) acceptCompany(candidate string) bool {
	if candidate == "" || len(candidate) > 60 {
		return false
	}
	if inList(strings.ToLower(candidate), e.cfg.CompanyStoplist) {
		return false
	}
	// single stoplisted word dressed up with casing still doesn't count
	words := strings.Fields(candidate)
	if len(words) == 1 && inList(strings.ToLower(words[0]), e.cfg.CompanyStoplist) {
		return false
	}
	return true
}

func inList(s string, list []string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
