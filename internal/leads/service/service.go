// Package service provides business logic for leads: admin list views,
// the status state machine, and CSV export.
package service

import (
	"context"
	"time"

	"fisiohome_backend/internal/leads/domain"
	"fisiohome_backend/internal/leads/repository"
	"fisiohome_backend/internal/leads/transport"
	"fisiohome_backend/platform/logger"

	"github.com/google/uuid"
)

// Service provides business logic for leads.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
	now  func() time.Time
}

// New creates a new leads service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// List retrieves leads filtered by status and free-text search.
// The full list is fetched once: counts always reflect the unfiltered
// collection, while Items carry only the matching records.
func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	status, err := parseStatusFilter(req.Status)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	leads, err := s.repo.List(ctx, nil)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	filtered := filterLeads(leads, status, req.Search)

	items := make([]transport.LeadResponse, len(filtered))
	for i, lead := range filtered {
		items[i] = toResponse(lead)
	}

	return transport.LeadListResponse{
		Items:  items,
		Total:  len(items),
		Counts: countByStatus(leads),
	}, nil
}

// Create stores a completed quiz submission as a new lead.
// Every lead starts in status "new" with no booking date.
func (s *Service) Create(ctx context.Context, params repository.CreateParams) (transport.LeadResponse, error) {
	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.log.Info("lead created", "id", lead.ID, "painZone", lead.PainZone)
	return toResponse(lead), nil
}

// GetByID retrieves a single lead.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toResponse(lead), nil
}

// ListBookings retrieves booked leads bucketed by booking window.
// Counts cover every window and are computed from the full booked list.
func (s *Service) ListBookings(ctx context.Context, req transport.ListBookingsRequest) (transport.BookingListResponse, error) {
	window, err := domain.ParseWindow(req.Window)
	if err != nil {
		return transport.BookingListResponse{}, err
	}

	booked, err := s.repo.ListBooked(ctx)
	if err != nil {
		return transport.BookingListResponse{}, err
	}

	now := s.now()
	filtered := filterByWindow(booked, window, now)

	items := make([]transport.BookingResponse, len(filtered))
	for i, lead := range filtered {
		items[i] = transport.BookingResponse{
			LeadResponse: toResponse(lead),
			Imminent:     lead.BookingDate != nil && domain.Imminent(*lead.BookingDate, now),
			Past:         lead.BookingDate != nil && lead.BookingDate.Before(now),
		}
	}

	return transport.BookingListResponse{
		Items:  items,
		Total:  len(items),
		Counts: countByWindow(booked, now),
	}, nil
}

// ChangeStatus sets a lead's status, enforcing the booking-date
// invariant: booking requires a date, leaving booked clears it.
// Re-selecting the current status is an idempotent write. On a failed
// persistence no local state has been advanced, so the stored record
// and whatever the caller displays stay in sync.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, req transport.ChangeStatusRequest) (transport.LeadResponse, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	bookingDate, err := domain.ResolveBookingDate(status, req.BookingDate)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	lead, err := s.repo.UpdateStatus(ctx, id, status, bookingDate)
	if err != nil {
		return transport.LeadResponse{}, err
	}

	s.log.Info("lead status changed", "id", lead.ID, "status", lead.Status)
	return toResponse(lead), nil
}

func parseStatusFilter(raw string) (*domain.Status, error) {
	if raw == "" || raw == "all" {
		return nil, nil
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	resp := transport.LeadResponse{
		ID:        lead.ID,
		CreatedAt: lead.CreatedAt.Format(time.RFC3339),
		PainZone:  lead.PainZone,
		Duration:  lead.Duration,
		Intensity: lead.Intensity,
		Cause:     lead.Cause,
		Name:      lead.Name,
		Age:       lead.Age,
		Phone:     lead.Phone,
		Email:     lead.Email,
		Notes:     lead.Notes,
		Status:    string(lead.Status),
	}
	if lead.BookingDate != nil {
		formatted := lead.BookingDate.Format(time.RFC3339)
		resp.BookingDate = &formatted
	}
	return resp
}
