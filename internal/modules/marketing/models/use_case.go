package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UseCase is a marketing-site use-case page
type UseCase struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Slug      string    `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Industry  string    `gorm:"type:text" json:"industry"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    string    `gorm:"type:text;default:'draft';index" json:"status"`
	Source    string    `gorm:"type:text;default:'manual'" json:"source"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UseCase) TableName() string {
	return "use_cases"
}

func (u *UseCase) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
