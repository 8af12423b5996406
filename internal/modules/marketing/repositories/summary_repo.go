package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

type SummaryRepo interface {
	Create(summary *models.ChatSummary) error
	List(limit int) ([]models.ChatSummary, error)
	ListSince(since time.Time) ([]models.ChatSummary, error)
}

type summaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) SummaryRepo {
	return &summaryRepo{db: db}
}

func (r *summaryRepo) Create(summary *models.ChatSummary) error {
	return r.db.Create(summary).Error
}

func (r *summaryRepo) List(limit int) ([]models.ChatSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var summaries []models.ChatSummary
	err := r.db.Order("interaction_date DESC").Limit(limit).Find(&summaries).Error
	return summaries, err
}

func (r *summaryRepo) ListSince(since time.Time) ([]models.ChatSummary, error) {
	var summaries []models.ChatSummary
	err := r.db.Where("interaction_date >= ?", since).
		Order("interaction_date DESC").
		Find(&summaries).Error
	return summaries, err
}
