package service

import (
	"strings"
	"time"

	"fisiohome_backend/internal/leads/domain"
	"fisiohome_backend/internal/leads/repository"
)

// matchesSearch reports whether a lead matches a free-text query:
// case-insensitive substring on name and email, raw substring on phone.
func matchesSearch(lead repository.Lead, query string) bool {
	if query == "" {
		return true
	}
	lowered := strings.ToLower(query)
	return strings.Contains(strings.ToLower(lead.Name), lowered) ||
		strings.Contains(strings.ToLower(lead.Email), lowered) ||
		strings.Contains(lead.Phone, query)
}

// filterLeads applies the status and search predicates in order,
// preserving the input ordering.
func filterLeads(leads []repository.Lead, status *domain.Status, search string) []repository.Lead {
	filtered := make([]repository.Lead, 0, len(leads))
	for _, lead := range leads {
		if status != nil && lead.Status != *status {
			continue
		}
		if !matchesSearch(lead, search) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// countByStatus tallies the full list per status, plus an "all" total.
func countByStatus(leads []repository.Lead) map[string]int {
	counts := map[string]int{"all": len(leads)}
	for _, status := range domain.AllStatuses {
		counts[string(status)] = 0
	}
	for _, lead := range leads {
		counts[string(lead.Status)]++
	}
	return counts
}

// filterByWindow keeps booked leads whose booking date falls inside the
// window. Leads without a booking date belong to no bucket.
func filterByWindow(leads []repository.Lead, window domain.Window, now time.Time) []repository.Lead {
	filtered := make([]repository.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.BookingDate == nil {
			continue
		}
		if !window.Contains(*lead.BookingDate, now) {
			continue
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// countByWindow tallies the full booked list per window bucket.
func countByWindow(leads []repository.Lead, now time.Time) map[string]int {
	counts := make(map[string]int, len(domain.AllWindows))
	for _, window := range domain.AllWindows {
		counts[string(window)] = len(filterByWindow(leads, window, now))
	}
	return counts
}
