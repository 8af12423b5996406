package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ChatSummary is the persisted projection of a finished chat session
type ChatSummary struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID           string         `gorm:"type:text;index" json:"session_id"`
	InteractionDate     time.Time      `gorm:"not null" json:"interaction_date"`
	ContactInfo         datatypes.JSON `gorm:"type:jsonb" json:"contact_info"`
	Summary             string         `gorm:"column:chat_summary;type:text" json:"chat_summary"`
	ServicesDiscussed   datatypes.JSON `gorm:"type:jsonb" json:"services_discussed"`
	KeyPainPoints       datatypes.JSON `gorm:"type:jsonb" json:"key_pain_points"`
	CallToActionOffered bool           `gorm:"default:false" json:"call_to_action_offered"`
	NextStep            string         `gorm:"type:text" json:"next_step"`
	LeadQualification   string         `gorm:"type:text;index" json:"lead_qualification"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (ChatSummary) TableName() string {
	return "chat_summaries"
}

// BeforeCreate sets UUID before creating
func (c *ChatSummary) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
