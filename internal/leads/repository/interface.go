package repository

import (
	"context"
	"time"

	"fisiohome_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// Lead is a quiz submission row. Created once by the public quiz flow,
// mutated only by the admin status-change operation, never deleted.
type Lead struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	PainZone    string
	Duration    string
	Intensity   int
	Cause       string
	Name        string
	Age         *int
	Phone       string
	Email       string
	Notes       *string
	Status      domain.Status
	BookingDate *time.Time
}

// CreateParams contains the fields supplied by the quiz flow.
// Status and booking date are not part of it: a new lead is always
// created as "new" with no booking date.
type CreateParams struct {
	PainZone  string
	Duration  string
	Intensity int
	Cause     string
	Name      string
	Age       *int
	Phone     string
	Email     string
	Notes     *string
}

// LeadReader provides read operations for leads.
type LeadReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	// List returns leads newest-first, optionally restricted to one status.
	List(ctx context.Context, status *domain.Status) ([]Lead, error)
	// ListBooked returns booked leads with a booking date, soonest-first.
	ListBooked(ctx context.Context) ([]Lead, error)
}

// LeadWriter provides write operations for leads.
type LeadWriter interface {
	Create(ctx context.Context, params CreateParams) (Lead, error)
	// UpdateStatus persists a resolved status change. bookingDate is
	// stored as given: the service has already applied the invariant.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, bookingDate *time.Time) (Lead, error)
}

// Repository combines all lead repository operations.
type Repository interface {
	LeadReader
	LeadWriter
}
