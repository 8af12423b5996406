package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionContext is the optional server-side copy of a widget session,
// keyed by the widget's session id
type SessionContext struct {
	SessionID string         `gorm:"type:text;primary_key" json:"session_id"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SessionContext) TableName() string {
	return "chat_session_contexts"
}
