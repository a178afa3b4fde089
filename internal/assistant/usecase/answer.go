package usecase

import (
	"context"
	"fmt"
	"strings"

	"propfirm-assistant/internal/assistant"
	"propfirm-assistant/internal/assistant/repository"
	"propfirm-assistant/internal/cache"
	"propfirm-assistant/internal/model"
	"propfirm-assistant/pkg/llmprovider"
)

// Answer runs the response pipeline: cache, intent, context filter, LLM.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input assistant.AnswerInput) (assistant.AnswerOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return assistant.AnswerOutput{}, assistant.ErrEmptyQuestion
	}

	start := uc.now()
	uc.l.Infof(ctx, "%s: user=%s firm=%q question=%q", LogPrefixAnswer, sc.UserID, input.Firm, question)

	if hit, ok := uc.cache.Lookup(ctx, question, input.Firm); ok {
		elapsed := uc.now().Sub(start)
		uc.cache.ObserveLatency(elapsed)
		uc.l.Infof(ctx, "%s: cache hit tier=%s similarity=%.2f", LogPrefixAnswer, hit.Tier, hit.Similarity)
		return assistant.AnswerOutput{
			ResponseText: hit.Response,
			IntentType:   string(uc.classifier.Detect(question).Type),
			Source:       sourceForTier(hit.Tier),
			Metrics: assistant.AnswerMetrics{
				ElapsedMs: elapsed.Milliseconds(),
			},
		}, nil
	}

	res := uc.classifier.Detect(question)

	rows, err := uc.repo.ContextRows(ctx, repository.ContextRowsOptions{Firm: input.Firm})
	if err != nil {
		return assistant.AnswerOutput{}, fmt.Errorf("failed to load context rows: %w", err)
	}
	if len(rows) == 0 {
		return assistant.AnswerOutput{}, assistant.ErrNoContext
	}

	filtered := uc.filter.Build(ctx, rows, res)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   uc.buildUserPrompt(question, input.Firm, res, filtered.Data),
		Temperature:  GenerationTemperature,
		MaxTokens:    GenerationMaxTokens,
	})
	if err != nil {
		return assistant.AnswerOutput{}, fmt.Errorf("%w: %v", assistant.ErrGeneration, err)
	}
	if resp.Text == "" {
		return assistant.AnswerOutput{}, assistant.ErrGeneration
	}

	// Only successful generations are cached; errors must stay retryable.
	uc.cache.Store(ctx, question, input.Firm, resp.Text)

	elapsed := uc.now().Sub(start)
	uc.cache.ObserveLatency(elapsed)

	uc.l.Infof(ctx, "%s: generated intent=%s provider=%s tokens=%d->%d safeguard=%v elapsed=%dms",
		LogPrefixAnswer, res.Type, resp.ProviderName,
		filtered.OriginalTokens, filtered.OptimizedTokens, filtered.SafeguardActivated, elapsed.Milliseconds())

	return assistant.AnswerOutput{
		ResponseText:          resp.Text,
		IntentType:            string(res.Type),
		Source:                assistant.SourceLLM,
		TokenReductionPercent: filtered.ReductionPercent(),
		Metrics: assistant.AnswerMetrics{
			OriginalTokens:     filtered.OriginalTokens,
			OptimizedTokens:    filtered.OptimizedTokens,
			ElapsedMs:          elapsed.Milliseconds(),
			SafeguardActivated: filtered.SafeguardActivated,
		},
	}, nil
}

func sourceForTier(tier cache.Tier) assistant.Source {
	switch tier {
	case cache.TierExact:
		return assistant.SourceCacheExact
	case cache.TierSemantic:
		return assistant.SourceCacheSemantic
	case cache.TierPrecomputed:
		return assistant.SourceCachePrecomputed
	default:
		return assistant.SourceLLM
	}
}
