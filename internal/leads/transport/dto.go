package transport

import (
	"time"

	"github.com/google/uuid"
)

// ListLeadsRequest carries the ambient admin list filters.
type ListLeadsRequest struct {
	Status string `form:"status" validate:"omitempty,oneof=all new contacted booked completed"`
	Search string `form:"search" validate:"omitempty,max=200"`
}

// ListBookingsRequest selects a booking time-window bucket.
type ListBookingsRequest struct {
	Window string `form:"window" validate:"omitempty,oneof=all today week month"`
}

// ChangeStatusRequest sets a lead's status. BookingDate is required when
// the target status is "booked" and ignored otherwise.
type ChangeStatusRequest struct {
	Status      string     `json:"status" validate:"required,oneof=new contacted booked completed"`
	BookingDate *time.Time `json:"bookingDate,omitempty"`
}

// LeadResponse represents a lead in API responses.
type LeadResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   string    `json:"createdAt"`
	PainZone    string    `json:"painZone"`
	Duration    string    `json:"duration"`
	Intensity   int       `json:"intensity"`
	Cause       string    `json:"cause"`
	Name        string    `json:"name"`
	Age         *int      `json:"age,omitempty"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
	BookingDate *string   `json:"bookingDate,omitempty"`
}

// LeadListResponse wraps the filtered lead list. Counts are always
// computed against the full unfiltered list so the UI can show totals
// per status regardless of the selected filter.
type LeadListResponse struct {
	Items  []LeadResponse `json:"items"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// BookingResponse represents a booked lead in the bookings view.
type BookingResponse struct {
	LeadResponse
	Imminent bool `json:"imminent"`
	Past     bool `json:"past"`
}

// BookingListResponse wraps the bucket-filtered bookings list.
// Counts are per-window and computed from the full booked list.
type BookingListResponse struct {
	Items  []BookingResponse `json:"items"`
	Total  int               `json:"total"`
	Counts map[string]int    `json:"counts"`
}
