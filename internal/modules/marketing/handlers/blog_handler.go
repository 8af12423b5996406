package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
)

type BlogHandler struct {
	content *services.ContentService
}

func NewBlogHandler(content *services.ContentService) *BlogHandler {
	return &BlogHandler{content: content}
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description Create a new blog post, slug is derived from the title
// @Tags Blogs
// @Accept json
// @Produce json
// @Param post body services.CreateBlogInput true "Blog post data"
// @Success 201 {object} models.BlogPost
// @Failure 400 {object} map[string]interface{}
// @Router /blogs [post]
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	var input services.CreateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := h.content.CreateBlog(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetBlog godoc
// @Summary Get blog post by ID
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} map[string]interface{}
// @Router /blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Blog post ID is required",
		})
	}

	post, err := h.content.GetBlog(id)
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(post)
}

// ListBlogs godoc
// @Summary List blog posts
// @Tags Blogs
// @Produce json
// @Param limit query int false "Max rows" default(20)
// @Param status query string false "Filter by status (draft/published)"
// @Success 200 {array} models.BlogPost
// @Router /blogs [get]
func (h *BlogHandler) ListBlogs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	posts, err := h.content.ListBlogs(limit, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(posts)
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Description Update fields of an existing post; empty fields are left unchanged
// @Tags Blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID"
// @Param post body services.CreateBlogInput true "Fields to update"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} map[string]interface{}
// @Router /blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	var input services.CreateBlogInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := h.content.UpdateBlog(c.Params("id"), input)
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(post)
}

// PublishBlog godoc
// @Summary Publish a blog post
// @Description Flip a draft post to published
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} models.BlogPost
// @Failure 404 {object} map[string]interface{}
// @Router /blogs/{id}/publish [patch]
func (h *BlogHandler) PublishBlog(c *fiber.Ctx) error {
	post, err := h.content.PublishBlog(c.Params("id"))
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(post)
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags Blogs
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	if err := h.content.DeleteBlog(c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
