package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/agent"
)

type HealthHandler struct {
	engine *agent.Engine
}

func NewHealthHandler(engine *agent.Engine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"service":         "marketing-lead-agent",
		"active_sessions": h.engine.ActiveSessions(),
	})
}
