package contextfilter

import (
	"propfirm-assistant/internal/intent"
	"propfirm-assistant/internal/model"
)

// Data maps a logical table name to its filtered rows.
type Data map[string][]model.Row

// Result is the outcome of reducing raw rows to an intent-scoped context.
type Result struct {
	Data               Data
	Intent             intent.Result
	OriginalTokens     int
	OptimizedTokens    int
	SafeguardActivated bool
}

// ReductionPercent reports how much of the original payload was removed.
func (r Result) ReductionPercent() float64 {
	if r.OriginalTokens == 0 {
		return 0
	}
	saved := float64(r.OriginalTokens-r.OptimizedTokens) / float64(r.OriginalTokens)
	if saved < 0 {
		return 0
	}
	return saved * 100
}
