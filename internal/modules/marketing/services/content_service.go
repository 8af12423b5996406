package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/repositories"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/shared/utils"
)

type CreateBlogInput struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Status  string   `json:"status"`
	Source  string   `json:"source"`
}

type CreateUseCaseInput struct {
	Title    string `json:"title"`
	Industry string `json:"industry"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	Source   string `json:"source"`
}

// ContentService owns the marketing-site content catalog: blog posts
// and use cases, whether hand-written or generated.
type ContentService struct {
	blogs    repositories.BlogRepo
	useCases repositories.UseCaseRepo
}

func NewContentService(blogs repositories.BlogRepo, useCases repositories.UseCaseRepo) *ContentService {
	return &ContentService{blogs: blogs, useCases: useCases}
}

func (s *ContentService) CreateBlog(input CreateBlogInput) (*models.BlogPost, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("title and content are required")
	}

	slug := utils.Slugify(input.Title)
	exists, err := s.blogs.SlugExists(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("a post with slug %q already exists", slug)
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	post := models.BlogPost{
		Title:   strings.TrimSpace(input.Title),
		Slug:    slug,
		Excerpt: strings.TrimSpace(input.Excerpt),
		Content: input.Content,
		Tags:    datatypes.JSON(tagsJSON),
		Status:  defaultString(input.Status, models.ContentStatusDraft),
		Source:  defaultString(input.Source, models.ContentSourceManual),
	}
	if err := s.blogs.Create(&post); err != nil {
		return nil, fmt.Errorf("failed to save blog post: %w", err)
	}
	return &post, nil
}

func (s *ContentService) GetBlog(id string) (*models.BlogPost, error) {
	return s.blogs.GetByID(id)
}

func (s *ContentService) ListBlogs(limit int, status string) ([]models.BlogPost, error) {
	return s.blogs.List(limit, status)
}

func (s *ContentService) DeleteBlog(id string) error {
	return s.blogs.Delete(id)
}

// UpdateBlog applies the non-empty fields of input to an existing post.
// The slug is never regenerated, published URLs stay stable.
func (s *ContentService) UpdateBlog(id string, input CreateBlogInput) (*models.BlogPost, error) {
	post, err := s.blogs.GetByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) != "" {
		post.Title = strings.TrimSpace(input.Title)
	}
	if strings.TrimSpace(input.Excerpt) != "" {
		post.Excerpt = strings.TrimSpace(input.Excerpt)
	}
	if strings.TrimSpace(input.Content) != "" {
		post.Content = input.Content
	}
	if input.Tags != nil {
		tagsJSON, err := json.Marshal(input.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tags: %w", err)
		}
		post.Tags = datatypes.JSON(tagsJSON)
	}
	if strings.TrimSpace(input.Status) != "" {
		post.Status = input.Status
	}

	if err := s.blogs.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *ContentService) PublishBlog(id string) (*models.BlogPost, error) {
	post, err := s.blogs.GetByID(id)
	if err != nil {
		return nil, err
	}
	post.Status = models.ContentStatusPublished
	if err := s.blogs.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *ContentService) CreateUseCase(input CreateUseCaseInput) (*models.UseCase, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("title and content are required")
	}

	uc := models.UseCase{
		Title:    strings.TrimSpace(input.Title),
		Slug:     utils.Slugify(input.Title),
		Industry: strings.TrimSpace(input.Industry),
		Content:  input.Content,
		Status:   defaultString(input.Status, models.ContentStatusDraft),
		Source:   defaultString(input.Source, models.ContentSourceManual),
	}
	if err := s.useCases.Create(&uc); err != nil {
		return nil, fmt.Errorf("failed to save use case: %w", err)
	}
	return &uc, nil
}

func (s *ContentService) GetUseCase(id string) (*models.UseCase, error) {
	return s.useCases.GetByID(id)
}

func (s *ContentService) ListUseCases(limit int, status string) ([]models.UseCase, error) {
	return s.useCases.List(limit, status)
}

// UpdateUseCase applies the non-empty fields of input to an existing use case
func (s *ContentService) UpdateUseCase(id string, input CreateUseCaseInput) (*models.UseCase, error) {
	uc, err := s.useCases.GetByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) != "" {
		uc.Title = strings.TrimSpace(input.Title)
	}
	if strings.TrimSpace(input.Industry) != "" {
		uc.Industry = strings.TrimSpace(input.Industry)
	}
	if strings.TrimSpace(input.Content) != "" {
		uc.Content = input.Content
	}
	if strings.TrimSpace(input.Status) != "" {
		uc.Status = input.Status
	}

	if err := s.useCases.Update(uc); err != nil {
		return nil, err
	}
	return uc, nil
}

func (s *ContentService) DeleteUseCase(id string) error {
	return s.useCases.Delete(id)
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
