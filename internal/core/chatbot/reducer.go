package chatbot

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Responder is the conversation state machine. Respond is a reducer:
// it never mutates the state it is given, it returns a new one.
type Responder struct {
	cfg        *Config
	classifier *Classifier
	extractor  *Extractor
	rng        *rand.Rand
}

// NewResponder builds a responder around the injected config and RNG.
// Pass a seeded rand.Rand in tests for deterministic template picks.
func NewResponder(cfg *Config, rng *rand.Rand) *Responder {
	return &Responder{
		cfg:        cfg,
		classifier: NewClassifier(cfg),
		extractor:  NewExtractor(cfg),
		rng:        rng,
	}
}

func (r *Responder) Classifier() *Classifier { return r.classifier }
func (r *Responder) Extractor() *Extractor   { return r.extractor }

// Respond maps (message, state) to (reply, next state).
func (r *Responder) Respond(message string, st *ConversationState) (string, *ConversationState) {
	if st == nil {
		st = NewConversationState()
	}
	next := st.Clone()
	cls := r.classifier.Classify(message, st)
	sort.Strings(cls.Services)
	sort.Strings(cls.PainPoints)

	// Category sets only ever grow
	next.ServicesDiscussed = addToSet(next.ServicesDiscussed, cls.Services...)
	next.PainPoints = addToSet(next.PainPoints, cls.PainPoints...)

	rc := r.cfg.Responses

	// Opting out while we're waiting on an answer cancels the pending question
	if cls.Intent == IntentNegative && st.Expecting != ExpectNone {
		next.Expecting = ExpectNone
		return rc.OptOut, next
	}

	// Pending-question sub-protocol: the next turn is read as the answer
	// to whatever we asked, before any generic dispatch.
	if reply, ok := r.collectExpected(message, st, next); ok {
		return reply, next
	}

	reply := r.dispatch(message, cls, next)

	// Talking about concrete services or pain points moves the
	// conversation out of the qualifying stage.
	if next.Stage == StageQualifying && len(cls.Services)+len(cls.PainPoints) > 0 {
		next.Stage = StageServiceDiscussion
	}

	return reply, next
}

// collectExpected handles the name -> email -> company collection chain.
// Returns ok=false when nothing was expected or the field couldn't be
// parsed, in which case the caller falls back to generic dispatch and
// the expectation stays put.
func (r *Responder) collectExpected(message string, st, next *ConversationState) (string, bool) {
	rc := r.cfg.Responses

	switch st.Expecting {
	case ExpectName:
		name := r.extractor.ExtractName(message)
		if name == "" {
			return "", false
		}
		if next.Contact.Name == "" {
			next.Contact.Name = name
		}
		next.Expecting = ExpectEmail
		return fmt.Sprintf(rc.AskEmail, firstName(next.Contact.Name)), true

	case ExpectEmail:
		email := r.extractor.ExtractEmail(message)
		if email == "" {
			return "", false
		}
		if next.Contact.Email == "" {
			next.Contact.Email = email
		}
		next.Expecting = ExpectCompany
		return rc.AskCompany, true

	case ExpectCompany:
		company := r.extractor.ExtractCompany(message)
		if company == "" {
			return "", false
		}
		if next.Contact.CompanyName == "" {
			next.Contact.CompanyName = company
		}
		next.Expecting = ExpectNone
		next.Stage = StageClosing
		return rc.ClosingReply, true
	}

	return "", false
}

func (r *Responder) dispatch(message string, cls Classification, next *ConversationState) string {
	rc := r.cfg.Responses

	switch cls.Intent {
	case IntentGreeting:
		if next.Stage == StageGreeting {
			next.Stage = StageQualifying
		}
		if next.Expecting == ExpectNone {
			next.Expecting = ExpectGeneral
		}
		return rc.pickGreeting(r.rng)

	case IntentWhatWeDo:
		if next.Stage == StageGreeting {
			next.Stage = StageQualifying
		}
		return rc.WhatWeDo

	case IntentChatbotRequest:
		if next.Stage == StageGreeting || next.Stage == StageQualifying {
			next.Stage = StageServiceDiscussion
		}
		return rc.ChatbotPitch

	case IntentNeedStatement:
		if next.Stage == StageGreeting || next.Stage == StageQualifying {
			next.Stage = StageServiceDiscussion
		}
		if len(cls.Services) > 0 {
			return fmt.Sprintf(rc.NeedAckWithTo, cls.Services[0])
		}
		return rc.NeedAck

	case IntentClarification:
		return rc.Clarification

	case IntentQuestion:
		return r.questionReply(message)

	case IntentInterest:
		if !next.CallToActionOffered {
			next.CallToActionOffered = true
			next.Stage = StageContactCollection
			next.Expecting = ExpectName
			return rc.CallToAction
		}
		return rc.pickFollowUp(r.rng)

	case IntentNegative:
		return rc.NegativeEnd

	case IntentContactInfo:
		next.Contact = next.Contact.Merge(r.extractor.Extract(message, next.Contact))
		// A phone number without an email still leaves us unable to follow
		// up in writing, so ask for the email next.
		if next.Contact.Email == "" {
			next.Expecting = ExpectEmail
			if next.Contact.Name == "" {
				return rc.AskEmailNoName
			}
			return fmt.Sprintf(rc.AskEmail, firstName(next.Contact.Name))
		}
		return rc.ContactThanks

	case IntentBusinessInfo:
		if next.Contact.CompanyName == "" {
			next.Contact.CompanyName = r.extractor.ExtractCompany(message)
		}
		return rc.CompanyAck

	default:
		return rc.pickFollowUp(r.rng)
	}
}

// questionReply picks among canned answers for the common question topics.
func (r *Responder) questionReply(message string) string {
	rc := r.cfg.Responses
	normalized := r.classifier.normalize(message)

	switch {
	case strings.Contains(normalized, "how much"),
		strings.Contains(normalized, "price"),
		strings.Contains(normalized, "pricing"),
		strings.Contains(normalized, "cost"):
		return rc.PricingAnswer
	case strings.Contains(normalized, "founder"),
		strings.Contains(normalized, "founded"):
		return rc.FounderAnswer
	case strings.Contains(normalized, "case stud"),
		strings.Contains(normalized, "results"),
		strings.Contains(normalized, "examples"):
		return rc.CaseStudyAnswer
	default:
		return rc.GenericAnswer
	}
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
