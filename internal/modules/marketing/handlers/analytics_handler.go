package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-lead-agent-be/internal/modules/marketing/services"
)

type AnalyticsHandler struct {
	chatService *services.ChatService
}

func NewAnalyticsHandler(chatService *services.ChatService) *AnalyticsHandler {
	return &AnalyticsHandler{chatService: chatService}
}

// GetLeadReport godoc
// @Summary Lead analytics report
// @Description Qualification breakdown, daily lead counts and top topics for the dashboard
// @Tags Analytics
// @Produce json
// @Param period query string false "today / this_week / this_month / last_30_days / last_90_days" default(last_30_days)
// @Success 200 {object} analytics.LeadReport
// @Failure 500 {object} map[string]interface{}
// @Router /analytics/leads [get]
func (h *AnalyticsHandler) GetLeadReport(c *fiber.Ctx) error {
	period := c.Query("period", "last_30_days")
	dateRange := analytics.GetDateRange(period)

	summaries, err := h.chatService.ListSummariesSince(dateRange.Start)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(analytics.BuildLeadReport(period, summaries))
}
