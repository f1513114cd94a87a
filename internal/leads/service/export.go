package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"fisiohome_backend/internal/leads/repository"
	"fisiohome_backend/internal/leads/transport"
)

// csvHeader is the fixed export column order. Headers stay in Italian:
// the export is consumed by the practice's staff.
var csvHeader = []string{
	"Data", "Nome", "Età", "Telefono", "Email",
	"Zona Dolore", "Durata", "Intensità", "Causa", "Note", "Stato",
}

const exportDateLayout = "02/01/2006"

// ExportCSV renders the currently filtered lead list as a CSV document
// and returns the bytes together with a date-stamped filename.
// Cells follow RFC 4180 quoting, so embedded quotes survive a round
// trip through any standard CSV parser.
func (s *Service) ExportCSV(ctx context.Context, req transport.ListLeadsRequest) ([]byte, string, error) {
	status, err := parseStatusFilter(req.Status)
	if err != nil {
		return nil, "", err
	}

	leads, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, "", err
	}

	filtered := filterLeads(leads, status, req.Search)

	data, err := renderCSV(filtered)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("richieste_fisioapp_%s.csv", s.now().Format("2006-01-02"))
	return data, filename, nil
}

func renderCSV(leads []repository.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, lead := range leads {
		if err := w.Write(csvRow(lead)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func csvRow(lead repository.Lead) []string {
	age := ""
	if lead.Age != nil {
		age = strconv.Itoa(*lead.Age)
	}
	notes := ""
	if lead.Notes != nil {
		notes = *lead.Notes
	}

	return []string{
		lead.CreatedAt.In(time.Local).Format(exportDateLayout),
		lead.Name,
		age,
		lead.Phone,
		lead.Email,
		lead.PainZone,
		lead.Duration,
		strconv.Itoa(lead.Intensity),
		lead.Cause,
		notes,
		string(lead.Status),
	}
}
