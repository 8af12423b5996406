package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkshopRegistration is one seat at a workshop/webinar
type WorkshopRegistration struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkshopSlug string    `gorm:"type:text;not null;index" json:"workshop_slug"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null" json:"email"`
	Phone        string    `gorm:"type:text" json:"phone"`
	CompanyName  string    `gorm:"type:text" json:"company_name"`
	TicketCode   string    `gorm:"type:text;not null;uniqueIndex" json:"ticket_code"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WorkshopRegistration) TableName() string {
	return "workshop_registrations"
}

func (w *WorkshopRegistration) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
