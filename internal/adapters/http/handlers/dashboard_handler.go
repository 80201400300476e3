package handlers

import (
	"github.com/gofiber/fiber/v2"

	"grievance-backend/internal/core/services"
	"grievance-backend/internal/pkg/response"
)

// DashboardHandler handles the admin dashboard endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns the admin dashboard data
// @Summary Admin dashboard
// @Description Complaint overview, distributions, trends and recent complaints
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	data, err := h.dashboardService.Summary(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch dashboard data")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
