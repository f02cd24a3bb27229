package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "Pending"
	TicketStatusOnGoing  TicketStatus = "On-Going"
	TicketStatusResolved TicketStatus = "Resolved"
)

// Valid reports whether the status is a known lifecycle state.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusOnGoing, TicketStatusResolved:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMid      TicketPriority = "Mid"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// Valid reports whether the priority is a known level.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMid, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// TicketCategory enumerates the supported request categories.
type TicketCategory string

const (
	TicketCategoryHardware TicketCategory = "Hardware"
	TicketCategorySoftware TicketCategory = "Software"
	TicketCategoryAccount  TicketCategory = "Account"
)

// Valid reports whether the category is a known value.
func (c TicketCategory) Valid() bool {
	switch c {
	case TicketCategoryHardware, TicketCategorySoftware, TicketCategoryAccount:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests.
//
// ResolvedAt is non-nil exactly when Status is Resolved; the repository
// writes both columns in a single statement so the pair never drifts.
type Ticket struct {
	ID          int64
	ReferenceNo string
	UserEmail   string
	FullName    string
	Subject     string
	Description string
	Category    TicketCategory
	Priority    TicketPriority
	Status      TicketStatus
	ImageURL    *string
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}

// Resolved reports whether the ticket has reached the Resolved state.
func (t *Ticket) Resolved() bool {
	return t.Status == TicketStatusResolved
}
