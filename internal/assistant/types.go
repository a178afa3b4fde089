package assistant

import "time"

// AnswerInput is the input for answering a user question.
// UserID lives in model.Scope, not here.
type AnswerInput struct {
	Question string // Natural language question from the user
	Firm     string // Optional firm slug to scope the answer (empty = all firms)
}

// Source identifies where the response text came from.
type Source string

const (
	SourceCacheExact       Source = "cache_exact"
	SourceCacheSemantic    Source = "cache_semantic"
	SourceCachePrecomputed Source = "cache_precomputed"
	SourceLLM              Source = "llm"
)

// AnswerMetrics carries per-request pipeline measurements.
type AnswerMetrics struct {
	OriginalTokens     int   `json:"original_tokens"`
	OptimizedTokens    int   `json:"optimized_tokens"`
	ElapsedMs          int64 `json:"elapsed_ms"`
	SafeguardActivated bool  `json:"safeguard_activated"`
}

// AnswerOutput is the result of the answer pipeline.
type AnswerOutput struct {
	ResponseText          string        `json:"response_text"`
	IntentType            string        `json:"intent_type"`
	Source                Source        `json:"source"`
	TokenReductionPercent float64       `json:"token_reduction_percent"`
	Metrics               AnswerMetrics `json:"metrics"`
}

// FirmSummary is a lightweight view of a prop firm for listings.
type FirmSummary struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"` // last refresh of the firm's reference data
}
