package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itsquarehub/helpdesk-service/internal/domain"
)

func makeTicket(id int64, status domain.TicketStatus, priority domain.TicketPriority, createdAt time.Time) domain.Ticket {
	ticket := domain.Ticket{
		ID:        id,
		Status:    status,
		Priority:  priority,
		CreatedAt: createdAt,
	}
	if status == domain.TicketStatusResolved {
		resolved := createdAt.Add(time.Hour)
		ticket.ResolvedAt = &resolved
	}
	return ticket
}

func fixtureTickets() []domain.Ticket {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Ticket{
		makeTicket(1, domain.TicketStatusPending, domain.TicketPriorityLow, base),
		makeTicket(2, domain.TicketStatusResolved, domain.TicketPriorityHigh, base.Add(1*time.Hour)),
		makeTicket(3, domain.TicketStatusOnGoing, domain.TicketPriorityLow, base.Add(2*time.Hour)),
		makeTicket(4, domain.TicketStatusResolved, domain.TicketPriorityLow, base.Add(3*time.Hour)),
		makeTicket(5, domain.TicketStatusPending, domain.TicketPriorityCritical, base.Add(4*time.Hour)),
	}
}

func TestFilterTickets(t *testing.T) {
	tickets := fixtureTickets()

	t.Run("all filters pass everything through", func(t *testing.T) {
		filtered := FilterTickets(tickets, FilterAll, FilterAll)
		assert.Equal(t, tickets, filtered)
	})

	t.Run("status filter matches exactly", func(t *testing.T) {
		filtered := FilterTickets(tickets, "Resolved", FilterAll)
		assert.Len(t, filtered, 2)
		for _, ticket := range filtered {
			assert.Equal(t, domain.TicketStatusResolved, ticket.Status)
		}
	})

	t.Run("filters are AND combined", func(t *testing.T) {
		filtered := FilterTickets(tickets, "Resolved", "Low")
		assert.Len(t, filtered, 1)
		assert.Equal(t, int64(4), filtered[0].ID)
	})

	t.Run("no match yields empty set", func(t *testing.T) {
		filtered := FilterTickets(tickets, "On-Going", "Critical")
		assert.Empty(t, filtered)
	})
}

func TestSortForDisplay(t *testing.T) {
	tickets := fixtureTickets()
	sorted := SortForDisplay(tickets)

	t.Run("unresolved come before resolved", func(t *testing.T) {
		seenResolved := false
		for _, ticket := range sorted {
			if ticket.Resolved() {
				seenResolved = true
			} else {
				assert.False(t, seenResolved, "unresolved ticket after a resolved one")
			}
		}
	})

	t.Run("newest first within each group", func(t *testing.T) {
		ids := make([]int64, 0, len(sorted))
		for _, ticket := range sorted {
			ids = append(ids, ticket.ID)
		}
		assert.Equal(t, []int64{5, 3, 1, 4, 2}, ids)
	})

	t.Run("input is untouched", func(t *testing.T) {
		assert.Equal(t, fixtureTickets(), tickets)
	})
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(fixtureTickets())
	assert.Equal(t, DashboardStats{Total: 5, Active: 3, Resolved: 2}, stats)

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, DashboardStats{}, ComputeStats(nil))
	})
}
