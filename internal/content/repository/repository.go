// Package repository provides PostgreSQL persistence for page content.
package repository

import (
	"context"
	"errors"
	"fmt"

	"fisiohome_backend/platform/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// ListOverrides retrieves the stored tuples for a page in sort order.
func (r *Repo) ListOverrides(ctx context.Context, page string) ([]Override, error) {
	query := `
		SELECT section, content_key, content_value
		FROM site_content
		WHERE page = $1
		ORDER BY sort_order`

	rows, err := r.pool.Query(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("list content overrides: %w", err)
	}
	defer rows.Close()

	var overrides []Override
	for rows.Next() {
		var o Override
		if err := rows.Scan(&o.Section, &o.Key, &o.Value); err != nil {
			return nil, fmt.Errorf("scan content override: %w", err)
		}
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content overrides: %w", err)
	}

	return overrides, nil
}

// GetValue retrieves a single stored value.
func (r *Repo) GetValue(ctx context.Context, page, section, key string) (string, error) {
	query := `
		SELECT content_value
		FROM site_content
		WHERE page = $1 AND section = $2 AND content_key = $3`

	var value string
	err := r.pool.QueryRow(ctx, query, page, section, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("content value not found")
		}
		return "", fmt.Errorf("get content value: %w", err)
	}

	return value, nil
}

// ListRaw retrieves the stored rows for a page as the editor sees them.
func (r *Repo) ListRaw(ctx context.Context, page string) ([]Row, error) {
	query := `
		SELECT id, page, section, content_key, content_value, content_type, sort_order, updated_at
		FROM site_content
		WHERE page = $1
		ORDER BY section, sort_order`

	rows, err := r.pool.Query(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("list raw content: %w", err)
	}
	defer rows.Close()

	var results []Row
	for rows.Next() {
		var row Row
		err := rows.Scan(&row.ID, &row.Page, &row.Section, &row.Key, &row.Value,
			&row.Type, &row.SortOrder, &row.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan raw content: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate raw content: %w", err)
	}

	return results, nil
}

// UpsertBatch writes every tuple keyed by (page, section, content_key)
// in one transaction: the editor's save is a single logical operation.
func (r *Repo) UpsertBatch(ctx context.Context, items []UpsertParams) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO site_content (page, section, content_key, content_value, content_type, sort_order, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (page, section, content_key)
		DO UPDATE SET content_value = EXCLUDED.content_value,
		              content_type = EXCLUDED.content_type,
		              sort_order = EXCLUDED.sort_order,
		              updated_at = now()`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin content upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, item := range items {
		contentType := item.Type
		if contentType == "" {
			contentType = "text"
		}
		_, err := tx.Exec(ctx, query,
			item.Page, item.Section, item.Key, item.Value, contentType, item.SortOrder)
		if err != nil {
			return fmt.Errorf("upsert content %s/%s/%s: %w", item.Page, item.Section, item.Key, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit content upsert: %w", err)
	}

	return nil
}
