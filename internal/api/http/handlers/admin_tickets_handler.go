package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itsquarehub/helpdesk-service/internal/api/dto"
	"github.com/itsquarehub/helpdesk-service/internal/domain"
	"github.com/itsquarehub/helpdesk-service/internal/service"
	apperrors "github.com/itsquarehub/helpdesk-service/pkg/util"
)

// AdminTicketsHandler manages the authenticated dashboard endpoints.
type AdminTicketsHandler struct {
	service *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(ticketService *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{service: ticketService}
}

// List GET /api/admin/tickets. Optional status and priority query filters,
// response ordered for dashboard display with stats recomputed from the
// full set.
func (h *AdminTicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}

	stats := service.ComputeStats(tickets)

	statusFilter := c.Query("status", service.FilterAll)
	priorityFilter := c.Query("priority", service.FilterAll)
	filtered := service.FilterTickets(tickets, statusFilter, priorityFilter)
	display := service.SortForDisplay(filtered)

	items := make([]dto.TicketResponse, 0, len(display))
	for i := range display {
		items = append(items, dto.FromTicket(&display[i]))
	}
	return c.JSON(dto.TicketListResponse{Data: items, Stats: stats})
}

// UpdateStatus PUT /api/admin/tickets/:id.
func (h *AdminTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.service.UpdateStatus(c.UserContext(), int64(id), domain.TicketStatus(req.Status), req.Email, req.RefNo); err != nil {
		return err
	}

	return c.JSON(dto.UpdateStatusResponse{
		Success: true,
		Message: "Status updated successfully",
	})
}
