package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"

	ContentSourceManual    = "manual"
	ContentSourceGenerated = "generated"
)

// BlogPost covers both hand-written and scheduler-generated posts
type BlogPost struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Slug      string         `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Excerpt   string         `gorm:"type:text" json:"excerpt"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Tags      datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Status    string         `gorm:"type:text;default:'draft';index" json:"status"` // draft / published
	Source    string         `gorm:"type:text;default:'manual'" json:"source"`      // manual / generated
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
