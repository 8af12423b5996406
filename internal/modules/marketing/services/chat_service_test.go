package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

type memSummaryRepo struct {
	created []models.ChatSummary
}

func (m *memSummaryRepo) Create(summary *models.ChatSummary) error {
	m.created = append(m.created, *summary)
	return nil
}

func (m *memSummaryRepo) List(limit int) ([]models.ChatSummary, error) {
	return m.created, nil
}

func (m *memSummaryRepo) ListSince(since time.Time) ([]models.ChatSummary, error) {
	var out []models.ChatSummary
	for _, s := range m.created {
		if !s.InteractionDate.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestSubmitSummaryPersistsAllFields(t *testing.T) {
	repo := &memSummaryRepo{}
	svc := NewChatService(repo)

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	summary := chatbot.Summary{
		InteractionDate: now,
		ContactInfo: chatbot.ContactInfo{
			Name:        "John Smith",
			Email:       "john@acme.com",
			CompanyName: "Acme Corp",
		},
		ChatSummary:         "5 messages exchanged",
		ServicesDiscussed:   []string{"AI Automation"},
		KeyPainPoints:       []string{"Manual processes"},
		CallToActionOffered: true,
		NextStep:            "Schedule discovery call",
		LeadQualification:   chatbot.QualHot,
	}

	require.NoError(t, svc.SubmitSummary("sess-1", summary))
	require.Len(t, repo.created, 1)

	rec := repo.created[0]
	assert.Equal(t, "sess-1", rec.SessionID)
	assert.Equal(t, now, rec.InteractionDate)
	assert.Equal(t, "5 messages exchanged", rec.Summary)
	assert.True(t, rec.CallToActionOffered)
	assert.Equal(t, "Schedule discovery call", rec.NextStep)
	assert.Equal(t, "Hot", rec.LeadQualification)

	var contact chatbot.ContactInfo
	require.NoError(t, json.Unmarshal(rec.ContactInfo, &contact))
	assert.Equal(t, "john@acme.com", contact.Email)

	var services []string
	require.NoError(t, json.Unmarshal(rec.ServicesDiscussed, &services))
	assert.Equal(t, []string{"AI Automation"}, services)
}

func TestSubmitSummaryNilSlicesBecomeEmptyArrays(t *testing.T) {
	repo := &memSummaryRepo{}
	svc := NewChatService(repo)

	require.NoError(t, svc.SubmitSummary("sess-2", chatbot.Summary{
		InteractionDate:   time.Now(),
		LeadQualification: chatbot.QualCold,
	}))

	rec := repo.created[0]
	assert.JSONEq(t, "[]", string(rec.ServicesDiscussed))
	assert.JSONEq(t, "[]", string(rec.KeyPainPoints))
}
