package chatbot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSummaryQualificationRecomputed(t *testing.T) {
	st := NewConversationState()
	st.ServicesDiscussed = addToSet(st.ServicesDiscussed, "AI Automation")
	st.PainPoints = addToSet(st.PainPoints, "Manual processes")

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s := BuildSummary(st, nil, now)

	assert.Equal(t, QualHot, s.LeadQualification)
	assert.Equal(t, now, s.InteractionDate)
	assert.Equal(t, []string{"AI Automation"}, s.ServicesDiscussed)
	assert.Equal(t, []string{"Manual processes"}, s.KeyPainPoints)
}

func TestBuildSummaryNextStep(t *testing.T) {
	withEmail := NewConversationState()
	withEmail.Contact.Email = "a@b.co"
	assert.Equal(t, "Schedule discovery call", BuildSummary(withEmail, nil, time.Now()).NextStep)

	ctaOnly := NewConversationState()
	ctaOnly.CallToActionOffered = true
	assert.Equal(t, "Follow up on pending contact request", BuildSummary(ctaOnly, nil, time.Now()).NextStep)

	discussed := NewConversationState()
	discussed.PainPoints = []string{"Cost concerns"}
	assert.Equal(t, "Nurture with relevant content", BuildSummary(discussed, nil, time.Now()).NextStep)

	empty := NewConversationState()
	assert.Equal(t, "No action required", BuildSummary(empty, nil, time.Now()).NextStep)
}

func TestBuildSummaryText(t *testing.T) {
	st := NewConversationState()
	st.Stage = StageClosing
	st.ServicesDiscussed = []string{"Digital Marketing"}
	st.Contact.Name = "Jane Doe"

	msgs := []Message{
		NewMessage("hi", SenderUser),
		NewMessage("hello!", SenderBot),
		NewMessage("I need marketing help", SenderUser),
	}

	s := BuildSummary(st, msgs, time.Now())
	assert.Contains(t, s.ChatSummary, "3 messages")
	assert.Contains(t, s.ChatSummary, "2 from visitor")
	assert.Contains(t, s.ChatSummary, "Digital Marketing")
	assert.Contains(t, s.ChatSummary, "Contact details were shared")
}

func TestBuildSummaryNilState(t *testing.T) {
	s := BuildSummary(nil, nil, time.Now())
	assert.Equal(t, QualCold, s.LeadQualification)
	assert.False(t, s.CallToActionOffered)
}
