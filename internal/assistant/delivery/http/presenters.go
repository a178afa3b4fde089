package http

import (
	"time"

	"propfirm-assistant/internal/assistant"
	"propfirm-assistant/internal/cache"
	"propfirm-assistant/pkg/response"
)

// --- Request DTOs ---

type askReq struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
	Firm     string `json:"firm"     binding:"omitempty,max=64"`
}

func (r askReq) toInput() assistant.AnswerInput {
	return assistant.AnswerInput{
		Question: r.Question,
		Firm:     r.Firm,
	}
}

// --- Response DTOs ---

type askResp struct {
	Response              string            `json:"response"`
	Intent                string            `json:"intent"`
	Source                string            `json:"source"`
	TokenReductionPercent float64           `json:"token_reduction_percent"`
	OriginalTokens        int               `json:"original_tokens"`
	OptimizedTokens       int               `json:"optimized_tokens"`
	ElapsedMs             int64             `json:"elapsed_ms"`
	SafeguardActivated    bool              `json:"safeguard_activated"`
	AnsweredAt            response.DateTime `json:"answered_at"`
}

func newAskResp(out assistant.AnswerOutput) askResp {
	return askResp{
		Response:              out.ResponseText,
		Intent:                out.IntentType,
		Source:                string(out.Source),
		TokenReductionPercent: out.TokenReductionPercent,
		OriginalTokens:        out.Metrics.OriginalTokens,
		OptimizedTokens:       out.Metrics.OptimizedTokens,
		ElapsedMs:             out.Metrics.ElapsedMs,
		SafeguardActivated:    out.Metrics.SafeguardActivated,
		AnsweredAt:            response.DateTime(time.Now()),
	}
}

type cacheStatsResp struct {
	Metrics cache.Metrics `json:"metrics"`
	HitRate float64       `json:"hit_rate"`
}

func newCacheStatsResp(m cache.Metrics) cacheStatsResp {
	return cacheStatsResp{Metrics: m, HitRate: m.HitRate()}
}

type firmResp struct {
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description,omitempty"`
	UpdatedAt   response.Date `json:"updated_at"`
}

type firmsResp struct {
	Firms []firmResp `json:"firms"`
	Count int        `json:"count"`
}

func newFirmsResp(firms []assistant.FirmSummary) firmsResp {
	out := make([]firmResp, 0, len(firms))
	for _, f := range firms {
		out = append(out, firmResp{
			Name:        f.Name,
			Slug:        f.Slug,
			Description: f.Description,
			UpdatedAt:   response.Date(f.UpdatedAt),
		})
	}
	return firmsResp{Firms: out, Count: len(out)}
}
