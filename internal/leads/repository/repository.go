// Package repository provides PostgreSQL persistence for leads.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fisiohome_backend/internal/leads/domain"
	"fisiohome_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = `id, created_at, pain_zone, duration, intensity, cause, name, age, phone, email, notes, status, booking_date`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM quiz_submissions
		WHERE id = $1`

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead by id: %w", err)
	}

	return lead, nil
}

// List retrieves leads ordered by creation time, newest first.
// A nil status returns every lead.
func (r *Repo) List(ctx context.Context, status *domain.Status) ([]Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM quiz_submissions
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC`

	var statusParam interface{}
	if status != nil {
		statusParam = string(*status)
	}

	rows, err := r.pool.Query(ctx, query, statusParam)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ListBooked retrieves booked leads that carry a booking date,
// ordered by booking date ascending.
func (r *Repo) ListBooked(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM quiz_submissions
		WHERE status = $1 AND booking_date IS NOT NULL
		ORDER BY booking_date ASC`

	rows, err := r.pool.Query(ctx, query, string(domain.StatusBooked))
	if err != nil {
		return nil, fmt.Errorf("list booked leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// Create inserts a new lead with status "new" and no booking date.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Lead, error) {
	query := `
		INSERT INTO quiz_submissions (pain_zone, duration, intensity, cause, name, age, phone, email, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + leadColumns

	lead, err := scanLead(r.pool.QueryRow(ctx, query,
		params.PainZone, params.Duration, params.Intensity, params.Cause,
		params.Name, params.Age, params.Phone, params.Email, params.Notes,
		string(domain.StatusNew),
	))
	if err != nil {
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}

	return lead, nil
}

// UpdateStatus sets the status and booking date of a lead.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, bookingDate *time.Time) (Lead, error) {
	query := `
		UPDATE quiz_submissions
		SET status = $2, booking_date = $3
		WHERE id = $1
		RETURNING ` + leadColumns

	lead, err := scanLead(r.pool.QueryRow(ctx, query, id, string(status), bookingDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("update lead status: %w", err)
	}

	return lead, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (Lead, error) {
	var lead Lead
	var status string

	err := row.Scan(
		&lead.ID, &lead.CreatedAt, &lead.PainZone, &lead.Duration, &lead.Intensity,
		&lead.Cause, &lead.Name, &lead.Age, &lead.Phone, &lead.Email, &lead.Notes,
		&status, &lead.BookingDate,
	)
	if err != nil {
		return Lead{}, err
	}

	lead.Status = domain.Status(status)
	return lead, nil
}

func scanLeads(rows pgx.Rows) ([]Lead, error) {
	var results []Lead

	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		results = append(results, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return results, nil
}
