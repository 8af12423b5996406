package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/chatbot"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
)

// ChatService persists engine summaries and serves them back out.
// It is the SummarySubmitter the agent engine is wired with.
type ChatService struct {
	summaries repositories.SummaryRepo
}

func NewChatService(summaries repositories.SummaryRepo) *ChatService {
	return &ChatService{summaries: summaries}
}

// SubmitSummary stores a close-time conversation summary
func (s *ChatService) SubmitSummary(sessionID string, summary chatbot.Summary) error {
	_, err := s.StoreSummary(sessionID, summary)
	return err
}

// StoreSummary persists a summary and returns the stored record
func (s *ChatService) StoreSummary(sessionID string, summary chatbot.Summary) (*models.ChatSummary, error) {
	contactJSON, err := json.Marshal(summary.ContactInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal contact info: %w", err)
	}
	servicesJSON, err := json.Marshal(nonNil(summary.ServicesDiscussed))
	if err != nil {
		return nil, fmt.Errorf("marshal services: %w", err)
	}
	painPointsJSON, err := json.Marshal(nonNil(summary.KeyPainPoints))
	if err != nil {
		return nil, fmt.Errorf("marshal pain points: %w", err)
	}

	record := models.ChatSummary{
		SessionID:           sessionID,
		InteractionDate:     summary.InteractionDate,
		ContactInfo:         datatypes.JSON(contactJSON),
		Summary:             summary.ChatSummary,
		ServicesDiscussed:   datatypes.JSON(servicesJSON),
		KeyPainPoints:       datatypes.JSON(painPointsJSON),
		CallToActionOffered: summary.CallToActionOffered,
		NextStep:            summary.NextStep,
		LeadQualification:   string(summary.LeadQualification),
	}
	if err := s.summaries.Create(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListSummaries returns recent summaries, newest first
func (s *ChatService) ListSummaries(limit int) ([]models.ChatSummary, error) {
	return s.summaries.List(limit)
}

// ListSummariesSince returns summaries at or after the given time
func (s *ChatService) ListSummariesSince(since time.Time) ([]models.ChatSummary, error) {
	return s.summaries.ListSince(since)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
