package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
)

type UseCaseHandler struct {
	content *services.ContentService
}

func NewUseCaseHandler(content *services.ContentService) *UseCaseHandler {
	return &UseCaseHandler{content: content}
}

// CreateUseCase godoc
// @Summary Create a use case
// @Tags UseCases
// @Accept json
// @Produce json
// @Param usecase body services.CreateUseCaseInput true "Use case data"
// @Success 201 {object} models.UseCase
// @Failure 400 {object} map[string]interface{}
// @Router /usecases [post]
func (h *UseCaseHandler) CreateUseCase(c *fiber.Ctx) error {
	var input services.CreateUseCaseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	uc, err := h.content.CreateUseCase(input)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(uc)
}

// GetUseCase godoc
// @Summary Get use case by ID
// @Tags UseCases
// @Produce json
// @Param id path string true "Use case ID"
// @Success 200 {object} models.UseCase
// @Failure 404 {object} map[string]interface{}
// @Router /usecases/{id} [get]
func (h *UseCaseHandler) GetUseCase(c *fiber.Ctx) error {
	uc, err := h.content.GetUseCase(c.Params("id"))
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Use case not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(uc)
}

// ListUseCases godoc
// @Summary List use cases
// @Tags UseCases
// @Produce json
// @Param limit query int false "Max rows" default(20)
// @Param status query string false "Filter by status (draft/published)"
// @Success 200 {array} models.UseCase
// @Router /usecases [get]
func (h *UseCaseHandler) ListUseCases(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	ucs, err := h.content.ListUseCases(limit, c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(ucs)
}

// UpdateUseCase godoc
// @Summary Update a use case
// @Description Update fields of an existing use case; empty fields are left unchanged
// @Tags UseCases
// @Accept json
// @Produce json
// @Param id path string true "Use case ID"
// @Param usecase body services.CreateUseCaseInput true "Fields to update"
// @Success 200 {object} models.UseCase
// @Failure 404 {object} map[string]interface{}
// @Router /usecases/{id} [put]
func (h *UseCaseHandler) UpdateUseCase(c *fiber.Ctx) error {
	var input services.CreateUseCaseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	uc, err := h.content.UpdateUseCase(c.Params("id"), input)
	if err == gorm.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Use case not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(uc)
}

// DeleteUseCase godoc
// @Summary Delete a use case
// @Tags UseCases
// @Produce json
// @Param id path string true "Use case ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /usecases/{id} [delete]
func (h *UseCaseHandler) DeleteUseCase(c *fiber.Ctx) error {
	if err := h.content.DeleteUseCase(c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
