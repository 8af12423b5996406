package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/models"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
)

type memWorkshopRepo struct {
	regs []models.WorkshopRegistration
}

func (m *memWorkshopRepo) Create(reg *models.WorkshopRegistration) error {
	m.regs = append(m.regs, *reg)
	return nil
}

func (m *memWorkshopRepo) ExistsForEmail(workshopSlug, email string) (bool, error) {
	for _, r := range m.regs {
		if r.WorkshopSlug == workshopSlug && r.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWorkshopRepo) ListBySlug(workshopSlug string) ([]models.WorkshopRegistration, error) {
	return m.regs, nil
}

func newWorkshopTestApp() *fiber.App {
	svc := services.NewWorkshopService(&memWorkshopRepo{}, nil)
	h := NewWorkshopHandler(svc)

	app := fiber.New()
	app.Post("/api/workshops/register", h.Register)
	app.Get("/api/workshops/:slug/registrations", h.ListRegistrations)
	return app
}

func TestWorkshopRegisterEndpoint(t *testing.T) {
	app := newWorkshopTestApp()

	resp := postJSON(t, app, "/api/workshops/register", fiber.Map{
		"workshop_slug": "ai-automation-101",
		"name":          "Jane Doe",
		"email":         "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var ticket services.WorkshopTicket
	decodeBody(t, resp, &ticket)
	assert.NotEmpty(t, ticket.Registration.TicketCode)
	assert.NotEmpty(t, ticket.QRCodePNG)
}

func TestWorkshopRegisterDuplicateConflicts(t *testing.T) {
	app := newWorkshopTestApp()

	body := fiber.Map{
		"workshop_slug": "ai-automation-101",
		"name":          "Jane Doe",
		"email":         "jane@example.com",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, app, "/api/workshops/register", body).StatusCode)
	assert.Equal(t, http.StatusConflict, postJSON(t, app, "/api/workshops/register", body).StatusCode)
}

func TestWorkshopRegisterValidation(t *testing.T) {
	app := newWorkshopTestApp()

	resp := postJSON(t, app, "/api/workshops/register", fiber.Map{"name": "Jane Doe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
