package service

import (
	"sort"

	"github.com/itsquarehub/helpdesk-service/internal/domain"
)

// FilterAll disables a filter dimension.
const FilterAll = "All"

// DashboardStats are derived counts recomputed from the full ticket list on
// every read; nothing maintains them incrementally.
type DashboardStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Resolved int `json:"resolved"`
}

// FilterTickets applies the dashboard status and priority filters. Each
// dimension is either "All" (no filtering) or an exact match; the two are
// AND-combined.
func FilterTickets(tickets []domain.Ticket, statusFilter, priorityFilter string) []domain.Ticket {
	filtered := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if statusFilter != FilterAll && string(t.Status) != statusFilter {
			continue
		}
		if priorityFilter != FilterAll && string(t.Priority) != priorityFilter {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// SortForDisplay orders tickets for the dashboard: unresolved before
// resolved, newest first within each group. The input slice is not
// modified.
func SortForDisplay(tickets []domain.Ticket) []domain.Ticket {
	sorted := make([]domain.Ticket, len(tickets))
	copy(sorted, tickets)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.Resolved() != b.Resolved() {
			return !a.Resolved()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return sorted
}

// ComputeStats counts total, active and resolved tickets.
func ComputeStats(tickets []domain.Ticket) DashboardStats {
	stats := DashboardStats{Total: len(tickets)}
	for i := range tickets {
		if tickets[i].Resolved() {
			stats.Resolved++
		} else {
			stats.Active++
		}
	}
	return stats
}
