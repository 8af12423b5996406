package repositories

import (
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

type WorkshopRepo interface {
	Create(reg *models.WorkshopRegistration) error
	ExistsForEmail(workshopSlug, email string) (bool, error)
	ListBySlug(workshopSlug string) ([]models.WorkshopRegistration, error)
}

type workshopRepo struct {
	db *gorm.DB
}

func NewWorkshopRepo(db *gorm.DB) WorkshopRepo {
	return &workshopRepo{db: db}
}

func (r *workshopRepo) Create(reg *models.WorkshopRegistration) error {
	return r.db.Create(reg).Error
}

func (r *workshopRepo) ExistsForEmail(workshopSlug, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.WorkshopRegistration{}).
		Where("workshop_slug = ? AND email = ?", workshopSlug, email).
		Count(&count).Error
	return count > 0, err
}

func (r *workshopRepo) ListBySlug(workshopSlug string) ([]models.WorkshopRegistration, error) {
	var regs []models.WorkshopRegistration
	err := r.db.Where("workshop_slug = ?", workshopSlug).
		Order("created_at ASC").
		Find(&regs).Error
	return regs, err
}
