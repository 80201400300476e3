package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"grievance-backend/internal/core/services"
	"grievance-backend/internal/pkg/response"
)

// ReportHandler handles report generation endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Generate builds a filtered complaint report
// @Summary Generate report
// @Description Complaints plus analytics for an optional date range and filters
// @Tags Reports
// @Produce json
// @Param startDate query string false "Range start (YYYY-MM-DD, inclusive)"
// @Param endDate query string false "Range end (YYYY-MM-DD, inclusive)"
// @Param status query string false "Status filter (All for none)"
// @Param category query string false "Category filter (All for none)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /reports/generate [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	filter := services.ReportFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	if start := c.Query("startDate"); start != "" {
		parsed, err := time.Parse("2006-01-02", start)
		if err != nil {
			return response.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
		}
		filter.StartDate = &parsed
	}
	if end := c.Query("endDate"); end != "" {
		parsed, err := time.Parse("2006-01-02", end)
		if err != nil {
			return response.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
		}
		filter.EndDate = &parsed
	}

	complaints, analytics, err := h.reportService.Generate(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate report")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"complaints": complaints,
		"analytics":  analytics,
	})
}
