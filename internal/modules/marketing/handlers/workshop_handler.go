package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
)

type WorkshopHandler struct {
	workshops *services.WorkshopService
}

func NewWorkshopHandler(workshops *services.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshops: workshops}
}

// Register godoc
// @Summary Register for a workshop
// @Description Book a seat; returns the ticket with its QR code and emails it to the attendee
// @Tags Workshops
// @Accept json
// @Produce json
// @Param registration body services.RegisterWorkshopInput true "Registration data"
// @Success 201 {object} services.WorkshopTicket
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /workshops/register [post]
func (h *WorkshopHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterWorkshopInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ticket, err := h.workshops.Register(input)
	if errors.Is(err, services.ErrAlreadyRegistered) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// ListRegistrations godoc
// @Summary List workshop registrations
// @Tags Workshops
// @Produce json
// @Param slug path string true "Workshop slug"
// @Success 200 {array} models.WorkshopRegistration
// @Failure 500 {object} map[string]interface{}
// @Router /workshops/{slug}/registrations [get]
func (h *WorkshopHandler) ListRegistrations(c *fiber.Ctx) error {
	regs, err := h.workshops.ListRegistrations(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(regs)
}
