package assistant

import (
	"context"

	"propfirm-assistant/internal/cache"
	"propfirm-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Answer runs the full response pipeline for a user question:
	// cache lookup, intent detection, context filtering, and LLM generation.
	Answer(ctx context.Context, sc model.Scope, input AnswerInput) (AnswerOutput, error)

	// ListFirms returns the names of all prop firms the assistant knows about.
	ListFirms(ctx context.Context) ([]FirmSummary, error)

	// CacheMetrics returns a snapshot of the response cache counters.
	CacheMetrics(ctx context.Context) cache.Metrics

	// ClearCache invalidates the exact and semantic cache tiers.
	ClearCache(ctx context.Context)
}
