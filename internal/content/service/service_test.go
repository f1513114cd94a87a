package service

import (
	"context"
	"errors"
	"testing"

	"fisiohome_backend/internal/content/domain"
	"fisiohome_backend/internal/content/repository"
	"fisiohome_backend/internal/content/transport"
	"fisiohome_backend/platform/apperr"
	"fisiohome_backend/platform/logger"
)

type fakeRepo struct {
	overrides map[string][]repository.Override
	values    map[string]string
	rows      map[string][]repository.Row
	saved     []repository.UpsertParams
	failReads error
	failWrite error
}

func (f *fakeRepo) ListOverrides(_ context.Context, page string) ([]repository.Override, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	return f.overrides[page], nil
}

func (f *fakeRepo) GetValue(_ context.Context, page, section, key string) (string, error) {
	if f.failReads != nil {
		return "", f.failReads
	}
	value, ok := f.values[page+"/"+section+"/"+key]
	if !ok {
		return "", apperr.NotFound("content value not found")
	}
	return value, nil
}

func (f *fakeRepo) ListRaw(_ context.Context, page string) ([]repository.Row, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	return f.rows[page], nil
}

func (f *fakeRepo) UpsertBatch(_ context.Context, items []repository.UpsertParams) error {
	if f.failWrite != nil {
		return f.failWrite
	}
	f.saved = append(f.saved, items...)
	return nil
}

func newTestService(repo repository.Repository) *Service {
	return New(repo, logger.New("development"))
}

func TestResolvePage_OverridesKnownKeysOnly(t *testing.T) {
	repo := &fakeRepo{overrides: map[string][]repository.Override{
		"home": {
			{Section: "hero", Key: "title", Value: "Benvenuto"},
			{Section: "hero", Key: "ghostKey", Value: "ignored"},
			{Section: "ghostSection", Key: "title", Value: "ignored"},
		},
	}}
	svc := newTestService(repo)

	resp, err := svc.ResolvePage(context.Background(), "home")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if resp.Sections["hero"]["title"] != "Benvenuto" {
		t.Fatalf("override not applied: %q", resp.Sections["hero"]["title"])
	}
	if _, ok := resp.Sections["hero"]["ghostKey"]; ok {
		t.Fatal("unknown key leaked into the tree")
	}
	if _, ok := resp.Sections["ghostSection"]; ok {
		t.Fatal("unknown section leaked into the tree")
	}

	// Key set identical to the defaults.
	defaults := domain.DefaultTree("home")
	if len(resp.Sections) != len(defaults) {
		t.Fatalf("section count drifted: %d vs %d", len(resp.Sections), len(defaults))
	}
	for section, fields := range defaults {
		if len(resp.Sections[section]) != len(fields) {
			t.Fatalf("key count drifted in %q", section)
		}
	}
}

func TestResolvePage_FetchErrorFallsBackToDefaults(t *testing.T) {
	repo := &fakeRepo{failReads: errors.New("connection refused")}
	svc := newTestService(repo)

	resp, err := svc.ResolvePage(context.Background(), "home")
	if err != nil {
		t.Fatalf("resolve must not fail on a fetch error: %v", err)
	}
	if resp.Sections["hero"]["title"] != "Il tuo benessere," {
		t.Fatal("expected pristine defaults on fetch error")
	}
}

func TestResolvePage_DefaultsNotMutatedAcrossCalls(t *testing.T) {
	repo := &fakeRepo{overrides: map[string][]repository.Override{
		"home": {{Section: "hero", Key: "title", Value: "Modificato"}},
	}}
	svc := newTestService(repo)

	if _, err := svc.ResolvePage(context.Background(), "home"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// Second resolve with no overrides must see the original default.
	repo.overrides = nil
	resp, err := svc.ResolvePage(context.Background(), "home")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resp.Sections["hero"]["title"] != "Il tuo benessere," {
		t.Fatal("a previous resolve mutated the shared defaults")
	}
}

func TestResolvePage_UnknownPage(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	if _, err := svc.ResolvePage(context.Background(), "blog"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetValue_StoredAndFallback(t *testing.T) {
	repo := &fakeRepo{values: map[string]string{
		"home/hero/title": "Benvenuto",
	}}
	svc := newTestService(repo)

	resp, err := svc.GetValue(context.Background(), "home", "hero", "title")
	if err != nil {
		t.Fatalf("get value failed: %v", err)
	}
	if resp.Value != "Benvenuto" {
		t.Fatalf("expected stored value, got %q", resp.Value)
	}

	resp, err = svc.GetValue(context.Background(), "home", "hero", "badge")
	if err != nil {
		t.Fatalf("fallback get failed: %v", err)
	}
	if resp.Value != "Fisioterapia a Domicilio Roma" {
		t.Fatalf("expected default fallback, got %q", resp.Value)
	}

	if _, err := svc.GetValue(context.Background(), "home", "hero", "nope"); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown key, got %v", err)
	}
}

func TestSaveBatch(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	err := svc.SaveBatch(context.Background(), transport.SaveBatchRequest{Items: []transport.SaveItem{
		{Page: "home", Section: "hero", Key: "title", Value: "Nuovo titolo"},
		{Page: "prezzi", Section: "packages", Key: "items", Value: "[]", Type: "json"},
	}})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if len(repo.saved) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(repo.saved))
	}
	if repo.saved[1].Type != "json" {
		t.Fatalf("content type lost: %+v", repo.saved[1])
	}
}

func TestSaveBatch_WriteFailure(t *testing.T) {
	repo := &fakeRepo{failWrite: errors.New("deadlock")}
	svc := newTestService(repo)

	err := svc.SaveBatch(context.Background(), transport.SaveBatchRequest{Items: []transport.SaveItem{
		{Page: "home", Section: "hero", Key: "title", Value: "x"},
	}})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestListRaw_FetchErrorReadsEmpty(t *testing.T) {
	svc := newTestService(&fakeRepo{failReads: errors.New("boom")})

	resp, err := svc.ListRaw(context.Background(), "contatti")
	if err != nil {
		t.Fatalf("list raw must not fail on a fetch error: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Fatalf("expected empty items, got %d", len(resp.Items))
	}
}

func TestOverview_CoversEveryPage(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if len(resp.Pages) != len(domain.Pages) {
		t.Fatalf("expected %d pages, got %d", len(domain.Pages), len(resp.Pages))
	}
	for _, page := range domain.Pages {
		if _, ok := resp.Pages[page]; !ok {
			t.Fatalf("missing page %q", page)
		}
	}
}
