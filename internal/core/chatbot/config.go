package chatbot

// PatternGroup is one entry in the intent priority cascade.
// The first group whose keyword set matches the message wins.
type PatternGroup struct {
	Intent   Intent
	Keywords []string
}

// Substitution rewrites one text variant to its canonical form.
type Substitution struct {
	From string
	To   string
}

// Config carries every keyword table and response template the classifier
// and responder need. Injected at construction so tests can override it.
type Config struct {
	// Substitutions collapse known text variants after lowercasing,
	// applied in declaration order
	Substitutions []Substitution

	// IntentGroups evaluated in order, first match wins
	IntentGroups []PatternGroup

	// ServiceKeywords maps category label -> trigger keywords
	ServiceKeywords map[string][]string

	// PainPointKeywords maps category label -> trigger keywords
	PainPointKeywords map[string][]string

	// NameStoplist rejects common non-name words during extraction
	NameStoplist []string

	// CompanyStoplist rejects generic terms during company extraction
	CompanyStoplist []string

	Responses ResponseConfig
}

// DefaultConfig returns the production keyword tables and templates.
func DefaultConfig() *Config {
	return &Config{
		Substitutions: []Substitution{
			{From: "chat boot", To: "chatbot"},
			{From: "chat bot", To: "chatbot"},
			{From: "chatbots", To: "chatbot"},
			{From: "a.i.", To: "ai"},
			{From: "e mail", To: "email"},
			{From: "e-mail", To: "email"},
		},
		IntentGroups: []PatternGroup{
			{Intent: IntentGreeting, Keywords: []string{
				"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "howdy",
			}},
			{Intent: IntentWhatWeDo, Keywords: []string{
				"what do you do", "what does your company", "what services", "what is this",
				"who are you", "tell me about your", "what can you do",
			}},
			{Intent: IntentChatbotRequest, Keywords: []string{
				"chatbot", "bot for my", "virtual assistant", "ai assistant",
			}},
			{Intent: IntentNeedStatement, Keywords: []string{
				"i need", "we need", "looking for", "i want", "we want",
				"help me", "help us", "struggling with", "i'm trying to",
			}},
			{Intent: IntentClarification, Keywords: []string{
				"what do you mean", "can you explain", "don't understand",
				"i'm confused", "clarify", "come again",
			}},
			{Intent: IntentQuestion, Keywords: []string{
				"how much", "pricing", "price", "cost", "how does", "how long",
				"founder", "who founded", "case study", "case studies",
				"what results", "do you have examples", "?",
			}},
			{Intent: IntentInterest, Keywords: []string{
				"interested", "sounds good", "sounds great", "tell me more",
				"let's do it", "sign me up", "get started", "book a call",
				"schedule", "demo", "yes please",
			}},
			{Intent: IntentNegative, Keywords: []string{
				"no thanks", "no thank you", "not interested", "not right now",
				"maybe later", "stop", "leave me alone", "nope",
			}},
		},
		ServiceKeywords: map[string][]string{
			"AI Automation": {
				"ai", "automation", "automate", "chatbot", "artificial intelligence",
				"machine learning", "workflow",
			},
			"Digital Marketing": {
				"marketing", "seo", "ads", "advertising", "social media",
				"campaign", "content", "leads",
			},
			"Custom Software": {
				"software", "app", "application", "website", "web development",
				"platform", "custom build", "dashboard",
			},
			"Systems Integration": {
				"integration", "integrate", "crm", "erp", "api", "sync", "connect our",
			},
		},
		PainPointKeywords: map[string][]string{
			"Manual processes": {
				"manual", "repetitive", "time consuming", "tedious", "by hand",
				"spreadsheet", "copy paste",
			},
			"Lead generation issues": {
				"not enough leads", "no leads", "few leads", "lead generation",
				"empty pipeline", "finding customers", "prospects",
			},
			"Marketing inefficiency": {
				"low conversion", "not converting", "wasted ad", "poor roi",
				"nobody responds", "low engagement",
			},
			"System integration problems": {
				"don't talk to each other", "disconnected", "silos",
				"double entry", "incompatible", "systems don't",
			},
			"Cost concerns": {
				"expensive", "too much money", "budget", "can't afford", "cheaper",
			},
		},
		NameStoplist: []string{
			"thanks", "thank", "hello", "yes", "no", "okay", "sure", "please",
			"good", "morning", "afternoon", "evening", "sounds", "great", "what",
		},
		CompanyStoplist: []string{
			"business", "company", "work", "home", "office", "nothing", "none",
			"yes", "no", "nope", "nah", "okay", "sure", "maybe", "not sure",
		},
		Responses: defaultResponses(),
	}
}
