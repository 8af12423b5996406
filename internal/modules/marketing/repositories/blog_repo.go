package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

type BlogRepo interface {
	Create(post *models.BlogPost) error
	GetByID(id string) (*models.BlogPost, error)
	List(limit int, status string) ([]models.BlogPost, error)
	GetRecent(n int) ([]models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id string) error
	SlugExists(slug string) (bool, error)
}

type blogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepo {
	return &blogRepo{db: db}
}

func (r *blogRepo) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogRepo) GetByID(id string) (*models.BlogPost, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", uid).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepo) List(limit int, status string) ([]models.BlogPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.db.Order("created_at DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var posts []models.BlogPost
	err := q.Find(&posts).Error
	return posts, err
}

func (r *blogRepo) GetRecent(n int) ([]models.BlogPost, error) {
	if n <= 0 {
		n = 10
	}
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Limit(n).Find(&posts).Error
	return posts, err
}

func (r *blogRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogRepo) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&models.BlogPost{}, "id = ?", uid).Error
}

func (r *blogRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
