package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
)

type memBlogRepo struct {
	posts map[string]*models.BlogPost
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{posts: map[string]*models.BlogPost{}}
}

func (m *memBlogRepo) Create(post *models.BlogPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	cp := *post
	m.posts[post.ID.String()] = &cp
	return nil
}

func (m *memBlogRepo) GetByID(id string) (*models.BlogPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memBlogRepo) List(limit int, status string) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range m.posts {
		if status == "" || p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memBlogRepo) GetRecent(n int) ([]models.BlogPost, error) { return m.List(n, "") }

func (m *memBlogRepo) Update(post *models.BlogPost) error {
	cp := *post
	m.posts[post.ID.String()] = &cp
	return nil
}

func (m *memBlogRepo) Delete(id string) error {
	delete(m.posts, id)
	return nil
}

func (m *memBlogRepo) SlugExists(slug string) (bool, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type memUseCaseRepo struct {
	ucs map[string]*models.UseCase
}

func newMemUseCaseRepo() *memUseCaseRepo {
	return &memUseCaseRepo{ucs: map[string]*models.UseCase{}}
}

func (m *memUseCaseRepo) Create(uc *models.UseCase) error {
	if uc.ID == uuid.Nil {
		uc.ID = uuid.New()
	}
	cp := *uc
	m.ucs[uc.ID.String()] = &cp
	return nil
}

func (m *memUseCaseRepo) GetByID(id string) (*models.UseCase, error) {
	u, ok := m.ucs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUseCaseRepo) List(limit int, status string) ([]models.UseCase, error) {
	var out []models.UseCase
	for _, u := range m.ucs {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUseCaseRepo) GetRecent(n int) ([]models.UseCase, error) { return m.List(n, "") }

func (m *memUseCaseRepo) Update(uc *models.UseCase) error {
	cp := *uc
	m.ucs[uc.ID.String()] = &cp
	return nil
}

func (m *memUseCaseRepo) Delete(id string) error {
	delete(m.ucs, id)
	return nil
}

func newContentService() (*ContentService, *memBlogRepo) {
	blogs := newMemBlogRepo()
	return NewContentService(blogs, newMemUseCaseRepo()), blogs
}

func TestCreateBlogSlugsAndDefaults(t *testing.T) {
	svc, _ := newContentService()

	post, err := svc.CreateBlog(CreateBlogInput{
		Title:   "Why Lead Scoring Matters!",
		Content: "body",
	})
	require.NoError(t, err)

	assert.Equal(t, "why-lead-scoring-matters", post.Slug)
	assert.Equal(t, models.ContentStatusDraft, post.Status)
	assert.Equal(t, models.ContentSourceManual, post.Source)
	assert.JSONEq(t, "[]", string(post.Tags))
}

func TestCreateBlogRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newContentService()

	_, err := svc.CreateBlog(CreateBlogInput{Title: "Same Title", Content: "a"})
	require.NoError(t, err)

	_, err = svc.CreateBlog(CreateBlogInput{Title: "Same Title", Content: "b"})
	assert.Error(t, err)
}

func TestCreateBlogRequiresTitleAndContent(t *testing.T) {
	svc, _ := newContentService()

	_, err := svc.CreateBlog(CreateBlogInput{Title: "No content"})
	assert.Error(t, err)

	_, err = svc.CreateBlog(CreateBlogInput{Content: "no title"})
	assert.Error(t, err)
}

func TestUpdateBlogKeepsSlugAndUnsetFields(t *testing.T) {
	svc, _ := newContentService()

	post, err := svc.CreateBlog(CreateBlogInput{
		Title:   "Original Title",
		Excerpt: "original excerpt",
		Content: "original content",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateBlog(post.ID.String(), CreateBlogInput{Title: "New Title"})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "original-title", updated.Slug, "slug stays stable")
	assert.Equal(t, "original excerpt", updated.Excerpt)
	assert.Equal(t, "original content", updated.Content)
}

func TestPublishBlogFlipsStatus(t *testing.T) {
	svc, blogs := newContentService()

	post, err := svc.CreateBlog(CreateBlogInput{Title: "Draft Post", Content: "x"})
	require.NoError(t, err)
	require.Equal(t, models.ContentStatusDraft, post.Status)

	published, err := svc.PublishBlog(post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusPublished, published.Status)

	stored, err := blogs.GetByID(post.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusPublished, stored.Status)
}

func TestUseCaseRoundTrip(t *testing.T) {
	svc, _ := newContentService()

	uc, err := svc.CreateUseCase(CreateUseCaseInput{
		Title:    "Invoice Automation for Logistics",
		Industry: "Logistics",
		Content:  "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice-automation-for-logistics", uc.Slug)

	updated, err := svc.UpdateUseCase(uc.ID.String(), CreateUseCaseInput{Status: models.ContentStatusPublished})
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusPublished, updated.Status)
	assert.Equal(t, "Invoice Automation for Logistics", updated.Title)
}
