// Package domain holds the lead lifecycle rules: the status enum, the
// booking-date invariant, and the booking time-window buckets.
package domain

import (
	"time"

	"fisiohome_backend/platform/apperr"
)

// Status is the lifecycle state of a lead.
// Transitions are admin-triggered and unordered: any state can be
// selected from any state. The only constrained state is Booked, which
// carries a booking date.
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusBooked    Status = "booked"
	StatusCompleted Status = "completed"
)

// AllStatuses lists the statuses in lifecycle order, used for per-status counts.
var AllStatuses = []Status{StatusNew, StatusContacted, StatusBooked, StatusCompleted}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusBooked, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", apperr.Validation("unknown status: " + raw)
	}
	return s, nil
}

// ResolveBookingDate applies the booking-date invariant for a status
// change: entering Booked requires a date supplied in the same
// operation, and any other target state clears it. The returned value
// is what must be persisted alongside the new status.
func ResolveBookingDate(target Status, bookingDate *time.Time) (*time.Time, error) {
	if target == StatusBooked {
		if bookingDate == nil {
			return nil, apperr.Validation("booking date is required when booking a lead")
		}
		return bookingDate, nil
	}
	return nil, nil
}
