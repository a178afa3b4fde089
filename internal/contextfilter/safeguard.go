package contextfilter

import (
	"context"

	"propfirm-assistant/internal/intent"
	"propfirm-assistant/internal/model"
)

// Build runs the intent projection and applies the minimum-content
// safeguard: a payload that filtered below the token floor is discarded and
// rebuilt with the wider safe field sets, trading token savings for
// guaranteed answer groundedness.
func (f *Filter) Build(ctx context.Context, rows []model.Row, res intent.Result) Result {
	original := rawTokens(rows)

	data := f.ByIntent(rows, res)
	optimized := data.Tokens()

	result := Result{
		Data:            data,
		Intent:          res,
		OriginalTokens:  original,
		OptimizedTokens: optimized,
	}

	if optimized >= f.minTokens || original <= optimized {
		return result
	}

	f.l.Warnf(ctx, "%s: filtered context too small (%d tokens < %d floor), rebuilding with safe field sets",
		LogPrefixBuild, optimized, f.minTokens)

	safe := projectAll(rows, safeFields, SafeMaxRows)
	result.Data = safe
	result.OptimizedTokens = safe.Tokens()
	result.SafeguardActivated = true
	return result
}
