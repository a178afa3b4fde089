package repository

import (
	"context"

	"propfirm-assistant/internal/model"
)

// FirmRepository is the interface for prop-firm data access operations.
type FirmRepository interface {
	// ListFirms returns one tagged row per firm from the firms table.
	ListFirms(ctx context.Context) ([]model.Row, error)

	// ContextRows returns the candidate rows for answering a question,
	// drawn from every table and tagged with their source table.
	ContextRows(ctx context.Context, opt ContextRowsOptions) ([]model.Row, error)
}

// ContextRowsOptions defines context retrieval parameters.
type ContextRowsOptions struct {
	Firm string // Firm slug filter (empty = all firms)
}
