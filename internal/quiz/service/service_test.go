package service

import (
	"context"
	"testing"

	leadrepo "fisiohome_backend/internal/leads/repository"
	leadtransport "fisiohome_backend/internal/leads/transport"
	"fisiohome_backend/internal/quiz/transport"
	"fisiohome_backend/platform/apperr"
	"fisiohome_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeCreator struct {
	lastParams leadrepo.CreateParams
	calls      int
	err        error
}

func (f *fakeCreator) Create(_ context.Context, params leadrepo.CreateParams) (leadtransport.LeadResponse, error) {
	f.calls++
	f.lastParams = params
	if f.err != nil {
		return leadtransport.LeadResponse{}, f.err
	}
	return leadtransport.LeadResponse{ID: uuid.New(), Status: "new", Name: params.Name}, nil
}

func validRequest() transport.SubmitRequest {
	return transport.SubmitRequest{
		PainZone:  "schiena",
		Duration:  "1_4_settimane",
		Intensity: 7,
		Cause:     "postura",
		Name:      "Mario Rossi",
		Phone:     "+39 333 1234567",
		Email:     "a@b.co",
	}
}

func TestSubmit_StoresNormalizedLead(t *testing.T) {
	creator := &fakeCreator{}
	svc := New(creator, logger.New("development"))

	resp, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.Status != "new" {
		t.Fatalf("expected status new, got %q", resp.Status)
	}
	if creator.calls != 1 {
		t.Fatalf("expected one create call, got %d", creator.calls)
	}
	if creator.lastParams.Phone != "+393331234567" {
		t.Fatalf("expected E.164 phone, got %q", creator.lastParams.Phone)
	}
	if creator.lastParams.Notes != nil {
		t.Fatal("expected nil notes for an empty notes field")
	}
}

func TestSubmit_RejectsInvalidContact(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*transport.SubmitRequest)
		field  string
	}{
		{"empty name", func(r *transport.SubmitRequest) { r.Name = "  " }, "name"},
		{"bad email", func(r *transport.SubmitRequest) { r.Email = "not-an-email" }, "email"},
		{"short phone", func(r *transport.SubmitRequest) { r.Phone = "123" }, "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := &fakeCreator{}
			svc := New(creator, logger.New("development"))

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if creator.calls != 0 {
				t.Fatal("invalid submission must not reach the store")
			}

			details, ok := err.(*apperr.Error).Details.(map[string]string)
			if !ok {
				t.Fatalf("expected field error map, got %T", err.(*apperr.Error).Details)
			}
			if _, present := details[tc.field]; !present {
				t.Fatalf("expected error keyed on %q, got %v", tc.field, details)
			}
		})
	}
}

func TestSubmit_AltroRequiresDescription(t *testing.T) {
	svc := New(&fakeCreator{}, logger.New("development"))

	req := validRequest()
	req.PainZone = "altro"

	if _, err := svc.Submit(context.Background(), req); !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSubmit_AltroStoresFreeText(t *testing.T) {
	creator := &fakeCreator{}
	svc := New(creator, logger.New("development"))

	req := validRequest()
	req.PainZone = "altro"
	req.PainZoneOther = "anca destra"

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if creator.lastParams.PainZone != "anca destra" {
		t.Fatalf("expected free text stored as pain zone, got %q", creator.lastParams.PainZone)
	}
}

func TestSubmit_UnparseablePhoneKeptRaw(t *testing.T) {
	creator := &fakeCreator{}
	svc := New(creator, logger.New("development"))

	req := validRequest()
	req.Phone = "00 00 00 00 00 00"

	if _, err := svc.Submit(context.Background(), req); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if creator.lastParams.Phone != "00 00 00 00 00 00" {
		t.Fatalf("expected raw phone preserved, got %q", creator.lastParams.Phone)
	}
}

func TestSubmit_StoreFailurePropagates(t *testing.T) {
	creator := &fakeCreator{err: apperr.Internal("insert failed")}
	svc := New(creator, logger.New("development"))

	if _, err := svc.Submit(context.Background(), validRequest()); !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
