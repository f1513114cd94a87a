package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"fisiohome_backend/internal/leads/domain"
	"fisiohome_backend/internal/leads/repository"
	"fisiohome_backend/internal/leads/transport"
)

func TestExportCSV_RoundTripWithEmbeddedQuotes(t *testing.T) {
	notes := `Dice: "mi fa male la schiena", soprattutto la mattina`
	lead := makeLead("Mario Rossi", "mario@example.com", "+393331234567", domain.StatusNew)
	lead.Notes = &notes

	repo := &fakeRepo{leads: []repository.Lead{lead}}
	svc := newTestService(repo)

	data, filename, err := svc.ExportCSV(context.Background(), transport.ListLeadsRequest{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	if filename != "richieste_fisioapp_2026-03-10.csv" {
		t.Fatalf("unexpected filename: %q", filename)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header := records[0]
	if header[0] != "Data" || header[len(header)-1] != "Stato" {
		t.Fatalf("unexpected header: %v", header)
	}

	row := records[1]
	if len(row) != len(csvHeader) {
		t.Fatalf("expected %d cells, got %d", len(csvHeader), len(row))
	}
	if row[1] != "Mario Rossi" {
		t.Fatalf("unexpected name cell: %q", row[1])
	}
	// The quoted notes cell must come back byte-identical.
	if row[9] != notes {
		t.Fatalf("notes did not survive the round trip: %q", row[9])
	}
	if row[10] != "new" {
		t.Fatalf("unexpected status cell: %q", row[10])
	}
}

func TestExportCSV_AppliesFilters(t *testing.T) {
	repo := &fakeRepo{leads: []repository.Lead{
		makeLead("Mario Rossi", "mario@example.com", "+393331234567", domain.StatusNew),
		makeLead("Luca Bianchi", "luca@example.com", "+393400000000", domain.StatusContacted),
	}}
	svc := newTestService(repo)

	data, _, err := svc.ExportCSV(context.Background(), transport.ListLeadsRequest{Status: "contacted"})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 filtered row, got %d records", len(records))
	}
	if records[1][1] != "Luca Bianchi" {
		t.Fatalf("unexpected row: %v", records[1])
	}
}

func TestExportCSV_EmptyListStillHasHeader(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	data, _, err := svc.ExportCSV(context.Background(), transport.ListLeadsRequest{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a header-only document, got %d lines", len(lines))
	}
}

func TestExportCSV_OptionalFieldsRenderEmpty(t *testing.T) {
	lead := makeLead("Anna Verdi", "anna@example.com", "+393351112233", domain.StatusNew)
	lead.Age = nil
	lead.Notes = nil
	lead.CreatedAt = time.Date(2026, 2, 5, 8, 30, 0, 0, time.UTC)

	repo := &fakeRepo{leads: []repository.Lead{lead}}
	svc := newTestService(repo)

	data, _, err := svc.ExportCSV(context.Background(), transport.ListLeadsRequest{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}
	row := records[1]
	if row[2] != "" || row[9] != "" {
		t.Fatalf("expected empty age and notes cells, got %q and %q", row[2], row[9])
	}
}
