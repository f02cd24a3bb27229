package events

import (
	"time"

	"github.com/itsquarehub/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
)

// Event represents a domain event emitted by the lifecycle service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload carries the fields the created-ticket email needs.
type TicketCreatedPayload struct {
	ReferenceNo string                `json:"reference_no"`
	UserEmail   string                `json:"user_email"`
	FullName    string                `json:"full_name"`
	Category    domain.TicketCategory `json:"category"`
}

// TicketStatusChangedPayload carries the fields the status-update email needs.
type TicketStatusChangedPayload struct {
	ReferenceNo string              `json:"reference_no"`
	UserEmail   string              `json:"user_email"`
	NewStatus   domain.TicketStatus `json:"new_status"`
}
