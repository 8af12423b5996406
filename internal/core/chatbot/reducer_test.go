package chatbot

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResponder() *Responder {
	return NewResponder(DefaultConfig(), rand.New(rand.NewSource(1)))
}

func TestRespondGreetingScenario(t *testing.T) {
	r := newTestResponder()
	cfg := DefaultConfig()

	reply, next := r.Respond("Hi", NewConversationState())

	assert.Contains(t, cfg.Responses.Greetings, reply)
	assert.Equal(t, ExpectGeneral, next.Expecting)
	assert.Equal(t, StageQualifying, next.Stage)
}

func TestRespondChatbotRequestScenario(t *testing.T) {
	r := newTestResponder()

	reply, next := r.Respond("I need a chatbot for my website", NewConversationState())

	assert.NotEmpty(t, reply)
	assert.Contains(t, next.ServicesDiscussed, "AI Automation")
	assert.Equal(t, StageServiceDiscussion, next.Stage)
}

func TestRespondContactCollectionSequence(t *testing.T) {
	r := newTestResponder()

	// interest kicks off contact collection
	reply, st := r.Respond("sounds good, tell me more", NewConversationState())
	assert.Equal(t, DefaultConfig().Responses.CallToAction, reply)
	assert.True(t, st.CallToActionOffered)
	assert.Equal(t, StageContactCollection, st.Stage)
	assert.Equal(t, ExpectName, st.Expecting)

	reply, st = r.Respond("John Smith", st)
	assert.Contains(t, reply, "John")
	assert.Equal(t, "John Smith", st.Contact.Name)
	assert.Equal(t, ExpectEmail, st.Expecting)

	reply, st = r.Respond("john@acme.com", st)
	assert.Equal(t, DefaultConfig().Responses.AskCompany, reply)
	assert.Equal(t, "john@acme.com", st.Contact.Email)
	assert.Equal(t, ExpectCompany, st.Expecting)

	reply, st = r.Respond("Acme Corp", st)
	assert.Equal(t, DefaultConfig().Responses.ClosingReply, reply)

	require.Equal(t, ContactInfo{
		Name:        "John Smith",
		Email:       "john@acme.com",
		CompanyName: "Acme Corp",
	}, st.Contact)
	assert.Equal(t, StageClosing, st.Stage)
	assert.Equal(t, ExpectNone, st.Expecting)
}

func TestRespondExpectingNeverSkipsAhead(t *testing.T) {
	r := newTestResponder()

	st := NewConversationState()
	st.Expecting = ExpectName
	st.Stage = StageContactCollection

	// a turn that carries no parseable name leaves the expectation in place
	_, next := r.Respond("why do you need that?", st)
	assert.Equal(t, ExpectName, next.Expecting)
	assert.Empty(t, next.Contact.Name)
}

func TestRespondNegativeClearsExpecting(t *testing.T) {
	r := newTestResponder()

	st := NewConversationState()
	st.Expecting = ExpectEmail
	st.Stage = StageContactCollection

	reply, next := r.Respond("no thanks", st)

	assert.Equal(t, DefaultConfig().Responses.OptOut, reply)
	assert.Equal(t, ExpectNone, next.Expecting)
}

func TestRespondCallToActionOfferedOnlyOnce(t *testing.T) {
	r := newTestResponder()

	_, st := r.Respond("I'm interested", NewConversationState())
	assert.True(t, st.CallToActionOffered)

	// interrupt collection, then express interest again
	st.Expecting = ExpectNone
	reply, next := r.Respond("sounds great", st)

	assert.True(t, next.CallToActionOffered)
	assert.NotEqual(t, DefaultConfig().Responses.CallToAction, reply)
	assert.Equal(t, ExpectNone, next.Expecting)
}

func TestRespondVolunteeredPhoneAsksForEmail(t *testing.T) {
	r := newTestResponder()
	rc := DefaultConfig().Responses

	// a phone number alone isn't enough to follow up in writing
	reply, st := r.Respond("you can call me on (415) 555-0134", NewConversationState())
	assert.Equal(t, rc.AskEmailNoName, reply)
	assert.Equal(t, "(415) 555-0134", st.Contact.Phone)
	assert.Equal(t, ExpectEmail, st.Expecting)

	reply, st = r.Respond("john@acme.com", st)
	assert.Equal(t, rc.AskCompany, reply)
	assert.Equal(t, "john@acme.com", st.Contact.Email)
}

func TestRespondVolunteeredPhoneWithNameAsksForEmailByName(t *testing.T) {
	r := newTestResponder()
	rc := DefaultConfig().Responses

	reply, st := r.Respond("I'm Jane Doe, call me on 415-555-0134", NewConversationState())
	assert.Equal(t, fmt.Sprintf(rc.AskEmail, "Jane"), reply)
	assert.Equal(t, "Jane Doe", st.Contact.Name)
	assert.Equal(t, ExpectEmail, st.Expecting)
}

func TestRespondVolunteeredEmailGetsThanks(t *testing.T) {
	r := newTestResponder()
	rc := DefaultConfig().Responses

	reply, st := r.Respond("reach me at jane@corp.io", NewConversationState())
	assert.Equal(t, rc.ContactThanks, reply)
	assert.Equal(t, "jane@corp.io", st.Contact.Email)
	assert.Equal(t, ExpectNone, st.Expecting)
}

func TestRespondRefusalIsNotACompany(t *testing.T) {
	r := newTestResponder()

	st := NewConversationState()
	st.Stage = StageContactCollection
	st.Expecting = ExpectCompany

	_, next := r.Respond("No", st)

	assert.Empty(t, next.Contact.CompanyName)
	assert.Equal(t, ExpectCompany, next.Expecting)
	assert.NotEqual(t, StageClosing, next.Stage)
}

func TestRespondQualificationMonotonicAcrossTurns(t *testing.T) {
	r := newTestResponder()

	st := NewConversationState()
	assert.Equal(t, QualCold, st.Qualification())

	_, st = r.Respond("we need help with marketing", st)
	assert.Equal(t, QualWarm, st.Qualification())

	_, st = r.Respond("everything is manual here", st)
	assert.Equal(t, QualHot, st.Qualification())

	// nothing ever removes a category
	_, st = r.Respond("actually never mind", st)
	assert.Equal(t, QualHot, st.Qualification())
}

func TestRespondSetsAreAppendOnly(t *testing.T) {
	r := newTestResponder()

	st := NewConversationState()
	_, st = r.Respond("our marketing is a mess", st)
	before := append([]string(nil), st.ServicesDiscussed...)

	_, st = r.Respond("tell me about marketing again", st)
	for _, s := range before {
		assert.Contains(t, st.ServicesDiscussed, s)
	}
}

func TestRespondQuestionSubHandlers(t *testing.T) {
	r := newTestResponder()
	rc := DefaultConfig().Responses

	tests := []struct {
		message string
		want    string
	}{
		{"how much does this cost?", rc.PricingAnswer},
		{"who founded the company?", rc.FounderAnswer},
		{"do you have case studies?", rc.CaseStudyAnswer},
		{"how does onboarding work?", rc.GenericAnswer},
	}
	for _, tt := range tests {
		reply, _ := r.Respond(tt.message, NewConversationState())
		assert.Equal(t, tt.want, reply, "message %q", tt.message)
	}
}

func TestRespondDoesNotMutateInputState(t *testing.T) {
	r := newTestResponder()

	st := NewConversationState()
	_, _ = r.Respond("we need a chatbot", st)

	assert.Empty(t, st.ServicesDiscussed)
	assert.Equal(t, StageGreeting, st.Stage)
}

func TestRespondDeterministicWithSeededRNG(t *testing.T) {
	a := NewResponder(DefaultConfig(), rand.New(rand.NewSource(7)))
	b := NewResponder(DefaultConfig(), rand.New(rand.NewSource(7)))

	ra, _ := a.Respond("hello", NewConversationState())
	rb, _ := b.Respond("hello", NewConversationState())
	assert.Equal(t, ra, rb)
}

func TestRespondNilStateFallsBackToFresh(t *testing.T) {
	r := newTestResponder()

	reply, next := r.Respond("hi", nil)
	assert.NotEmpty(t, reply)
	require.NotNil(t, next)
}
