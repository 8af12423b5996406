package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

type UseCaseRepo interface {
	Create(uc *models.UseCase) error
	GetByID(id string) (*models.UseCase, error)
	List(limit int, status string) ([]models.UseCase, error)
	GetRecent(n int) ([]models.UseCase, error)
	Update(uc *models.UseCase) error
	Delete(id string) error
}

type useCaseRepo struct {
	db *gorm.DB
}

func NewUseCaseRepo(db *gorm.DB) UseCaseRepo {
	return &useCaseRepo{db: db}
}

func (r *useCaseRepo) Create(uc *models.UseCase) error {
	return r.db.Create(uc).Error
}

func (r *useCaseRepo) GetByID(id string) (*models.UseCase, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var uc models.UseCase
	if err := r.db.First(&uc, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *useCaseRepo) List(limit int, status string) ([]models.UseCase, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.db.Order("created_at DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var ucs []models.UseCase
	err := q.Find(&ucs).Error
	return ucs, err
}

func (r *useCaseRepo) GetRecent(n int) ([]models.UseCase, error) {
	if n <= 0 {
		n = 10
	}
	var ucs []models.UseCase
	err := r.db.Order("created_at DESC").Limit(n).Find(&ucs).Error
	return ucs, err
}

func (r *useCaseRepo) Update(uc *models.UseCase) error {
	return r.db.Save(uc).Error
}

func (r *useCaseRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&models.UseCase{}, "id = ?", uid).Error
}
