// Package service turns completed quiz submissions into stored leads.
package service

import (
	"context"
	"strings"

	leadrepo "fisiohome_backend/internal/leads/repository"
	leadtransport "fisiohome_backend/internal/leads/transport"
	"fisiohome_backend/internal/quiz/flow"
	"fisiohome_backend/internal/quiz/transport"
	"fisiohome_backend/platform/apperr"
	"fisiohome_backend/platform/logger"
	"fisiohome_backend/platform/phone"
)

// LeadCreator is the port into the leads context.
type LeadCreator interface {
	Create(ctx context.Context, params leadrepo.CreateParams) (leadtransport.LeadResponse, error)
}

type Service struct {
	leads LeadCreator
	log   *logger.Logger
}

func New(leads LeadCreator, log *logger.Logger) *Service {
	return &Service{leads: leads, log: log}
}

// Submit validates a completed assessment and stores it as a new lead.
// The phone number is normalized to E.164 when it parses; otherwise the
// raw input is kept so the practice still sees what the visitor typed.
func (s *Service) Submit(ctx context.Context, req transport.SubmitRequest) (leadtransport.LeadResponse, error) {
	draft := flow.Draft{
		PainZone:      req.PainZone,
		PainZoneOther: strings.TrimSpace(req.PainZoneOther),
		Duration:      req.Duration,
		Intensity:     req.Intensity,
		Cause:         req.Cause,
		Name:          strings.TrimSpace(req.Name),
		Age:           req.Age,
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Notes:         strings.TrimSpace(req.Notes),
	}

	fieldErrs := flow.ValidateContact(draft)
	if draft.PainZone == flow.PainZoneOther && draft.PainZoneOther == "" {
		fieldErrs["painZone"] = "Descrivi la zona del dolore"
	}
	if len(fieldErrs) > 0 {
		return leadtransport.LeadResponse{}, apperr.Validation("validation failed").WithDetails(fieldErrs)
	}

	// Free-text zone replaces the sentinel choice in the stored record.
	painZone := draft.PainZone
	if painZone == flow.PainZoneOther {
		painZone = draft.PainZoneOther
	}

	params := leadrepo.CreateParams{
		PainZone:  painZone,
		Duration:  draft.Duration,
		Intensity: draft.Intensity,
		Cause:     draft.Cause,
		Name:      draft.Name,
		Age:       draft.Age,
		Phone:     phone.NormalizeE164(draft.Phone),
		Email:     draft.Email,
	}
	if draft.Notes != "" {
		params.Notes = &draft.Notes
	}

	lead, err := s.leads.Create(ctx, params)
	if err != nil {
		return leadtransport.LeadResponse{}, err
	}

	s.log.Info("quiz submission stored", "id", lead.ID)
	return lead, nil
}
