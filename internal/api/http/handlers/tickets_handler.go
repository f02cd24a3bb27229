package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/itsquarehub/helpdesk-service/internal/api/dto"
	"github.com/itsquarehub/helpdesk-service/internal/service"
	"github.com/itsquarehub/helpdesk-service/internal/storage"
	apperrors "github.com/itsquarehub/helpdesk-service/pkg/util"
)

// TicketsHandler manages the public ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
	uploads *storage.UploadStore
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, uploads *storage.UploadStore) *TicketsHandler {
	return &TicketsHandler{service: ticketService, uploads: uploads}
}

// Create POST /api/tickets. Multipart form with an optional image attachment.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	input := service.TicketCreateInput{
		FullName:    c.FormValue("fullName"),
		Email:       c.FormValue("email"),
		Subject:     c.FormValue("subject"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Priority:    c.FormValue("priority"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		url, err := h.uploads.Save(file)
		if err != nil {
			var domainErr *apperrors.DomainError
			if errors.As(err, &domainErr) {
				return err
			}
			return apperrors.NewInternalError(err)
		}
		input.ImageURL = &url
	}

	ticket, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.FromTicket(ticket))
}

// Status GET /api/tickets/status?ref=ITS-1234.
func (h *TicketsHandler) Status(c *fiber.Ctx) error {
	ticket, err := h.service.GetByReference(c.UserContext(), c.Query("ref"))
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.HTTPStatus == http.StatusNotFound {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Ticket not found"})
		}
		return err
	}
	return c.JSON(dto.FromTicket(ticket))
}
