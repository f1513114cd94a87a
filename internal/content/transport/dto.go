package transport

import "github.com/google/uuid"

// PageResponse is a fully resolved page tree.
type PageResponse struct {
	Page     string                       `json:"page"`
	Sections map[string]map[string]string `json:"sections"`
}

// ValueResponse is a single resolved field value.
type ValueResponse struct {
	Page    string `json:"page"`
	Section string `json:"section"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

// SaveItem is one tuple of a batch save.
type SaveItem struct {
	Page      string `json:"page" validate:"required,oneof=home servizi prezzi chi-siamo contatti"`
	Section   string `json:"section" validate:"required,max=100"`
	Key       string `json:"key" validate:"required,max=100"`
	Value     string `json:"value"`
	Type      string `json:"type" validate:"omitempty,oneof=text json image"`
	SortOrder int    `json:"sortOrder" validate:"omitempty,min=0"`
}

// SaveBatchRequest carries the editor's save.
type SaveBatchRequest struct {
	Items []SaveItem `json:"items" validate:"required,min=1,max=500,dive"`
}

// RowResponse is a stored override row for the admin editor.
type RowResponse struct {
	ID        uuid.UUID `json:"id"`
	Page      string    `json:"page"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Type      string    `json:"type"`
	SortOrder int       `json:"sortOrder"`
	UpdatedAt string    `json:"updatedAt"`
}

// PageRowsResponse wraps the stored rows of one page.
type PageRowsResponse struct {
	Page  string        `json:"page"`
	Items []RowResponse `json:"items"`
}

// OverviewResponse maps every page to its stored override rows.
type OverviewResponse struct {
	Pages map[string][]RowResponse `json:"pages"`
}
