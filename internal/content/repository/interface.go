package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Override is one stored (section, key, value) tuple for a page,
// as consumed by the resolution merge.
type Override struct {
	Section string
	Key     string
	Value   string
}

// Row is a stored content record as the admin editor sees it.
type Row struct {
	ID        uuid.UUID
	Page      string
	Section   string
	Key       string
	Value     string
	Type      string
	SortOrder int
	UpdatedAt time.Time
}

// UpsertParams identifies and values one content tuple.
type UpsertParams struct {
	Page      string
	Section   string
	Key       string
	Value     string
	Type      string
	SortOrder int
}

// Repository is the persistence port for page content overrides.
type Repository interface {
	ListOverrides(ctx context.Context, page string) ([]Override, error)
	GetValue(ctx context.Context, page, section, key string) (string, error)
	ListRaw(ctx context.Context, page string) ([]Row, error)
	UpsertBatch(ctx context.Context, items []UpsertParams) error
}
