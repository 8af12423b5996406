package chatbot

import "math/rand"

// ResponseConfig holds every canned reply the responder can emit.
// Kept as data so tests can swap templates without touching logic.
type ResponseConfig struct {
	Greetings []string
	WhatWeDo  string

	ChatbotPitch  string
	NeedAck       string
	NeedAckWithTo string // used when a service category was detected, %s = category

	Clarification string

	PricingAnswer   string
	FounderAnswer   string
	CaseStudyAnswer string
	GenericAnswer   string

	CallToAction   string // first interest intent, asks for name
	AskEmail       string // %s = name
	AskEmailNoName string // asked when contact details arrive without a name
	AskCompany     string
	ClosingReply   string

	ContactThanks string
	CompanyAck    string

	OptOut      string
	NegativeEnd string

	FollowUps []string
}

func defaultResponses() ResponseConfig {
	return ResponseConfig{
		Greetings: []string{
			"Hi there! 👋 Welcome to our site. I can tell you about our AI automation, marketing, and software services. What brings you here today?",
			"Hello! Great to see you. We help businesses automate and grow — what can I help you with?",
		},
		WhatWeDo: "We build AI automation, digital marketing systems, custom software, and systems integrations for growing businesses. Which of those sounds closest to what you're after?",

		ChatbotPitch:  "Chatbots are one of our favourite builds — we create AI assistants that qualify leads and answer customer questions 24/7. What would you want a chatbot to do for you?",
		NeedAck:       "Got it — tell me a bit more about what you're trying to solve and I'll point you at the right service.",
		NeedAckWithTo: "That sounds like something our %s work covers really well. Want me to walk you through how we'd approach it?",

		Clarification: "No problem — in short, we take the repetitive parts of your business and automate them, and we build the marketing systems that bring leads in. What part would you like me to expand on?",

		PricingAnswer:   "Pricing depends on scope — most projects land between a fixed-fee pilot and a monthly retainer. If you share what you need, I can get you a tailored estimate.",
		FounderAnswer:   "We were founded by a small team of engineers and marketers who got tired of seeing businesses run on spreadsheets. We've been building automation for clients ever since.",
		CaseStudyAnswer: "We've helped clients cut manual admin by half and double their inbound leads — happy to send over a couple of relevant case studies. Want me to do that?",
		GenericAnswer:   "Good question! The short answer is: it depends on your setup, and we'd scope it properly on a quick call.",

		CallToAction:   "Sounds like we should set up a quick discovery call. 🎉 Can I grab your name first?",
		AskEmail:       "Thanks, %s! What's the best email to reach you on?",
		AskEmailNoName: "Great — what's the best email to reach you on?",
		AskCompany:     "Perfect. And what company are you with?",
		ClosingReply:   "Brilliant — you're all set. Our team will reach out within one business day to book your discovery call. Anything else I can help with meanwhile?",

		ContactThanks: "Thanks for sharing that — I've noted your details and someone from the team will follow up.",
		CompanyAck:    "Nice, thanks! That helps us prepare the right examples for you.",

		OptOut:      "No worries at all — I'll stop asking. I'm here if you change your mind or have any other questions. 😊",
		NegativeEnd: "Totally fine! Feel free to browse around, and ping me if anything catches your eye.",

		FollowUps: []string{
			"Is there a part of your business you wish ran itself?",
			"What's eating the most of your team's time right now?",
			"Are you mostly looking at automation, marketing, or software?",
		},
	}
}

// pickFollowUp selects one follow-up line using the injected RNG so
// tests can seed for determinism.
func (rc ResponseConfig) pickFollowUp(rng *rand.Rand) string {
	if len(rc.FollowUps) == 0 {
		return rc.GenericAnswer
	}
	return rc.FollowUps[rng.Intn(len(rc.FollowUps))]
}

func (rc ResponseConfig) pickGreeting(rng *rand.Rand) string {
	if len(rc.Greetings) == 0 {
		return "Hi there!"
	}
	return rc.Greetings[rng.Intn(len(rc.Greetings))]
}
