// Package service resolves page content by overlaying stored overrides
// on the shipped defaults, and backs the admin content editor.
package service

import (
	"context"
	"errors"
	"time"

	"fisiohome_backend/internal/content/domain"
	"fisiohome_backend/internal/content/repository"
	"fisiohome_backend/internal/content/transport"
	"fisiohome_backend/platform/apperr"
	"fisiohome_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
)

// pgUndefinedTable is raised before the schema has been migrated; the
// site must still render from defaults in that state.
const pgUndefinedTable = "42P01"

type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ResolvePage returns the full tree for a page: a deep copy of the
// defaults with stored overrides overlaid. Override tuples pointing at
// unknown sections or keys are ignored, and any fetch failure falls
// back to the pristine defaults. The returned tree always carries
// exactly the default key set.
func (s *Service) ResolvePage(ctx context.Context, page string) (transport.PageResponse, error) {
	if !domain.ValidPage(page) {
		return transport.PageResponse{}, apperr.NotFound("unknown page")
	}

	tree := domain.DefaultTree(page)

	overrides, err := s.repo.ListOverrides(ctx, page)
	if err != nil {
		s.logFetchError("resolve page content", page, err)
		return transport.PageResponse{Page: page, Sections: tree}, nil
	}

	for _, o := range overrides {
		section, ok := tree[o.Section]
		if !ok {
			continue
		}
		if _, ok := section[o.Key]; ok {
			section[o.Key] = o.Value
		}
	}

	return transport.PageResponse{Page: page, Sections: tree}, nil
}

// GetValue returns a single resolved field, falling back to the default
// when nothing is stored or the fetch fails.
func (s *Service) GetValue(ctx context.Context, page, section, key string) (transport.ValueResponse, error) {
	if !domain.ValidPage(page) {
		return transport.ValueResponse{}, apperr.NotFound("unknown page")
	}

	value, err := s.repo.GetValue(ctx, page, section, key)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			s.logFetchError("get content value", page, err)
		}
		fallback, ok := domain.DefaultTree(page)[section][key]
		if !ok {
			return transport.ValueResponse{}, apperr.NotFound("unknown content value")
		}
		value = fallback
	}

	return transport.ValueResponse{Page: page, Section: section, Key: key, Value: value}, nil
}

// SaveBatch upserts the editor's tuples as one logical operation.
func (s *Service) SaveBatch(ctx context.Context, req transport.SaveBatchRequest) error {
	items := make([]repository.UpsertParams, len(req.Items))
	for i, item := range req.Items {
		items[i] = repository.UpsertParams{
			Page:      item.Page,
			Section:   item.Section,
			Key:       item.Key,
			Value:     item.Value,
			Type:      item.Type,
			SortOrder: item.SortOrder,
		}
	}

	if err := s.repo.UpsertBatch(ctx, items); err != nil {
		s.log.Error("content batch save failed", "error", err, "items", len(items))
		return apperr.Wrap(apperr.KindInternal, "content save failed", err)
	}

	s.log.Info("content batch saved", "items", len(items))
	return nil
}

// ListRaw returns the stored rows of one page for the admin editor.
// A missing table reads as an empty page, not an error.
func (s *Service) ListRaw(ctx context.Context, page string) (transport.PageRowsResponse, error) {
	if !domain.ValidPage(page) {
		return transport.PageRowsResponse{}, apperr.NotFound("unknown page")
	}

	rows, err := s.repo.ListRaw(ctx, page)
	if err != nil {
		s.logFetchError("list raw content", page, err)
		return transport.PageRowsResponse{Page: page, Items: []transport.RowResponse{}}, nil
	}

	return transport.PageRowsResponse{Page: page, Items: toRowResponses(rows)}, nil
}

// Overview fetches the stored rows of every page concurrently.
func (s *Service) Overview(ctx context.Context) (transport.OverviewResponse, error) {
	results := make([][]transport.RowResponse, len(domain.Pages))

	g, gctx := errgroup.WithContext(ctx)
	for i, page := range domain.Pages {
		g.Go(func() error {
			resp, err := s.ListRaw(gctx, page)
			if err != nil {
				return err
			}
			results[i] = resp.Items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return transport.OverviewResponse{}, err
	}

	pages := make(map[string][]transport.RowResponse, len(domain.Pages))
	for i, page := range domain.Pages {
		pages[page] = results[i]
	}

	return transport.OverviewResponse{Pages: pages}, nil
}

// logFetchError stays silent on the pre-migration missing-table case.
func (s *Service) logFetchError(op, page string, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return
	}
	s.log.Error(op+" failed", "error", err, "page", page)
}

func toRowResponses(rows []repository.Row) []transport.RowResponse {
	items := make([]transport.RowResponse, len(rows))
	for i, row := range rows {
		items[i] = transport.RowResponse{
			ID:        row.ID,
			Page:      row.Page,
			Section:   row.Section,
			Key:       row.Key,
			Value:     row.Value,
			Type:      row.Type,
			SortOrder: row.SortOrder,
			UpdatedAt: row.UpdatedAt.Format(time.RFC3339),
		}
	}
	return items
}
