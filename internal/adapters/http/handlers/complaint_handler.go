package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"grievance-backend/internal/adapters/persistence/repositories"
	"grievance-backend/internal/core/domain"
	"grievance-backend/internal/core/services"
	"grievance-backend/internal/pkg/response"
)

// ComplaintHandler handles complaint endpoints
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// SubmitRequest represents complaint submission request body
type SubmitRequest struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserName    string `json:"userName"`
	Image       string `json:"image"`
}

// UpdateStatusRequest represents status update request body
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// Submit lodges a new complaint
// @Summary Submit complaint
// @Description Lodge a new complaint with an optional image
// @Tags Complaints
// @Accept json
// @Produce json
// @Param body body SubmitRequest true "Complaint data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /complaints [post]
func (h *ComplaintHandler) Submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.SubmitInput{
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		UserName:    req.UserName,
		Image:       req.Image,
	}

	complaintID, err := h.complaintService.Submit(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return response.BadRequest(c, "Missing required fields")
		case errors.Is(err, domain.ErrInvalidCategory):
			return response.BadRequest(c, "Unknown complaint category")
		default:
			return response.BadRequest(c, "Failed to lodge complaint")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Complaint lodged successfully",
		"complaintId": complaintID,
	})
}

// ListByUser returns a user's complaints
// @Summary List complaints by user
// @Description List all complaints lodged under a display name, newest first
// @Tags Complaints
// @Produce json
// @Param userName path string true "Submitter display name"
// @Success 200 {object} map[string]interface{}
// @Router /complaints/{userName} [get]
func (h *ComplaintHandler) ListByUser(c *fiber.Ctx) error {
	complaints, err := h.complaintService.ListByUser(c.Context(), c.Params("userName"))
	if err != nil {
		return response.BadRequest(c, "Failed to fetch complaints")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"complaints": complaints,
	})
}

// ListAll returns complaints matching optional filters
// @Summary List all complaints
// @Description List complaints with optional status/category filters and sorting
// @Tags Complaints
// @Produce json
// @Param status query string false "Status filter (All for none)"
// @Param category query string false "Category filter (All for none)"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param order query string false "Sort direction" default(desc)
// @Success 200 {object} map[string]interface{}
// @Router /complaints [get]
func (h *ComplaintHandler) ListAll(c *fiber.Ctx) error {
	filter := repositories.ComplaintFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		SortBy:   c.Query("sortBy", "createdAt"),
		Order:    c.Query("order", "desc"),
	}

	complaints, err := h.complaintService.ListAll(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch complaints")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"complaints": complaints,
	})
}

// Track returns a single complaint by its public identifier
// @Summary Track complaint
// @Description Get one complaint with its full status timeline
// @Tags Complaints
// @Produce json
// @Param complaintId path string true "Complaint ID (C00001...)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /complaints/track/{complaintId} [get]
func (h *ComplaintHandler) Track(c *fiber.Ctx) error {
	complaint, err := h.complaintService.Track(c.Context(), c.Params("complaintId"))
	if err != nil {
		if errors.Is(err, domain.ErrComplaintNotFound) {
			return response.NotFound(c, "Complaint not found")
		}
		return response.BadRequest(c, "Failed to fetch complaint")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"complaint": complaint,
	})
}

// GetImage returns the stored image payload of a complaint
// @Summary Get complaint image
// @Description Get the image attached to a complaint
// @Tags Complaints
// @Produce json
// @Param complaintId path string true "Complaint ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /complaints/image/{complaintId} [get]
func (h *ComplaintHandler) GetImage(c *fiber.Ctx) error {
	image, err := h.complaintService.GetImage(c.Context(), c.Params("complaintId"))
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return response.NotFound(c, "Image not found")
		}
		return response.BadRequest(c, "Failed to fetch image")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"image":   image,
	})
}

// UpdateStatus moves a complaint to a new status
// @Summary Update complaint status
// @Description Set a new status with an optional comment, recorded on the timeline
// @Tags Complaints
// @Accept json
// @Produce json
// @Param complaintId path string true "Complaint ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /complaints/update/{complaintId} [post]
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	complaint, err := h.complaintService.UpdateStatus(c.Context(), c.Params("complaintId"), req.Status, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrComplaintNotFound):
			return response.NotFound(c, "Complaint not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Unknown complaint status")
		default:
			return response.InternalServerError(c, "Failed to update complaint")
		}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Complaint updated successfully",
		"complaint": complaint,
	})
}

// Reopen puts a complaint back into the Reopened state
// @Summary Reopen complaint
// @Description Reopen a complaint, appending a timeline entry
// @Tags Complaints
// @Produce json
// @Param complaintId path string true "Complaint ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.Response
// @Router /complaints/reopen/{complaintId} [post]
func (h *ComplaintHandler) Reopen(c *fiber.Ctx) error {
	complaint, err := h.complaintService.Reopen(c.Context(), c.Params("complaintId"))
	if err != nil {
		if errors.Is(err, domain.ErrComplaintNotFound) {
			return response.NotFound(c, "Complaint not found")
		}
		return response.BadRequest(c, "Failed to reopen complaint")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Complaint reopened successfully",
		"complaint": complaint,
	})
}
