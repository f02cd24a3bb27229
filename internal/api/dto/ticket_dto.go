package dto

import (
	"time"

	"github.com/itsquarehub/helpdesk-service/internal/domain"
	"github.com/itsquarehub/helpdesk-service/internal/service"
)

// TicketResponse mirrors the persisted ticket record.
type TicketResponse struct {
	ID          int64                 `json:"id"`
	ReferenceNo string                `json:"reference_no"`
	UserEmail   string                `json:"user_email"`
	FullName    string                `json:"full_name"`
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
	Status      domain.TicketStatus   `json:"status"`
	ImageURL    *string               `json:"image_url"`
	CreatedAt   time.Time             `json:"created_at"`
	ResolvedAt  *time.Time            `json:"resolved_at"`
}

// TicketListResponse wraps the admin listing with recomputed dashboard stats.
type TicketListResponse struct {
	Data  []TicketResponse       `json:"data"`
	Stats service.DashboardStats `json:"stats"`
}

// UpdateStatusRequest payload for the admin status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Email  string `json:"email"`
	RefNo  string `json:"refNo"`
}

// UpdateStatusResponse acknowledgment.
type UpdateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FromTicket maps a domain ticket to its response shape.
func FromTicket(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		ReferenceNo: t.ReferenceNo,
		UserEmail:   t.UserEmail,
		FullName:    t.FullName,
		Subject:     t.Subject,
		Description: t.Description,
		Category:    t.Category,
		Priority:    t.Priority,
		Status:      t.Status,
		ImageURL:    t.ImageURL,
		CreatedAt:   t.CreatedAt,
		ResolvedAt:  t.ResolvedAt,
	}
}
